/* Package main: gobf -- a tape machine interpreter

The language has eight commands and nothing else. A program runs against a
tape of 30,000 cells, each a signed byte initialized to 0, with a data pointer
starting on the first cell.

Symbol  Function
  >     move the data pointer one cell right
  <     move the data pointer one cell left
  +     increment the current cell, 127 wraps around to -128
  -     decrement the current cell, -128 wraps around to 127
  .     write the current cell to output as a raw byte
  ,     read one byte of input into the current cell
  [     if the current cell is 0, jump forward past the matching ]
  ]     if the current cell is not 0, jump back past the matching [

Every other character is a comment, including whitespace.

Section 1: Loading

Source text is compiled in one pass into a Program: comment characters are
dropped, and each [ is paired with its ] so that loop instructions carry the
index of their partner. A stack of pending [ indices does the pairing; a ]
with nothing pending, or any [ still pending at the end of the source, fails
compilation with ErrUnbalancedBrackets. No unbalanced program ever runs.

Since comments are dropped, instruction indices are not source offsets.
Errors report a source location (name:line:col) instead.

Section 2: Running

The VM has a program counter and a data pointer. Each step runs the
instruction under the program counter and then advances it, except for a
taken jump, which lands just past the jump's partner. The VM terminates once
the program counter runs off the end of the program.

The tape never grows. Moving left from the first cell fails with
ErrPointerUnderflow, moving right from the last fails with ErrPointerOverflow;
either is caught before any cell is touched. Reading past the end of input
fails with ErrInputFailed. Any failure stops the run with the program counter
left on the failing instruction.

Output is a raw byte stream: a cell holding -1 is written as 0xff, not as
any kind of text encoding.

Section 3: see main.go for the command line driver.

*/
package main
