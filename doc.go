/* Package main: minforth -- a very small FORTH

minforth is an interpreter for a tiny FORTH-like language: integers, four
arithmetic operators, and words defined as flat macros.  Source is read a line
at a time; each line is split on whitespace, and each resulting word is one of:

	123 -5 +7     numbers; pushed onto the stack
	+ - * /       operators; pop two numbers, push one
	.             pop the top of the stack, printing it as the line's result
	: name ... ;  define name as the tokens between name and ;
	name          run the tokens defined as name

Any other word, like "foo-bar" or "1.5", is an error.

Operators take their left hand side from deeper in the stack, so "7 2 -"
results in 5 and "7 2 /" results in 3, division truncating toward 0.  Division
by zero is an error, while other arithmetic wraps around on overflow.

Definitions are not checked when they are made; the body of a word is simply
replayed each time the word is used, looking up any words it mentions at that
time.  So words may be defined in any order, and may be redefined later,
affecting every word that uses them; this program prints 42 and then 60:

	: inc 1 + ;
	: twice inc inc ;
	40 twice .
	: inc 10 + ;
	40 twice .

Definitions may span lines; the dictionary lasts until the program exits, and
is shared by every line and every file argument (so that one file may serve as
a prelude for another), unless -each is given, in which case each file is run
independently.

A word that uses itself never terminates; such runaway nesting is stopped with
an error after -max-depth levels.

Every error stops the program with a non-zero exit status, after printing the
file and line where it happened.  The interactive mode (-i, or when no files
are given) instead reports each error and carries on, keeping whatever state
the error left behind.
*/
package main
