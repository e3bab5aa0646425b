// Package textio reads and writes the plain integer streams lfsrcrack
// consumes and produces: base-10 unsigned 64-bit values separated by
// whitespace on input, one value per line on output.
package textio
