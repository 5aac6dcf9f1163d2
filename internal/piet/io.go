package piet

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
)

// Input supplies the program's input stream. Both reads may fail (EOF
// or malformed token); the machine treats a failed read as a no-op.
type Input interface {
	// ReadNumber reads the next integer token from the input.
	ReadNumber() (*big.Int, error)

	// ReadChar reads the next character from the input.
	ReadChar() (rune, error)
}

// Output receives the program's output. The engine treats writes as
// non-failing; errors are the collaborator's concern.
type Output interface {
	// WriteNumber writes the decimal text form of a number.
	WriteNumber(n *big.Int) error

	// WriteChar writes a single character.
	WriteChar(r rune) error
}

// readerInput adapts an io.Reader to the Input interface.
type readerInput struct {
	r *bufio.Reader
}

// NewReaderInput wraps a reader as a program input stream. Number reads
// skip leading whitespace and consume one signed decimal token.
func NewReaderInput(r io.Reader) Input {
	return &readerInput{r: bufio.NewReader(r)}
}

func (in *readerInput) ReadNumber() (*big.Int, error) {
	n := new(big.Int)
	if _, err := fmt.Fscan(in.r, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (in *readerInput) ReadChar() (rune, error) {
	r, _, err := in.r.ReadRune()
	if err != nil {
		return 0, err
	}
	return r, nil
}

// writerOutput adapts an io.Writer to the Output interface.
// Writes are unbuffered so interactive programs flush as they go.
type writerOutput struct {
	w io.Writer
}

// NewWriterOutput wraps a writer as a program output stream.
func NewWriterOutput(w io.Writer) Output {
	return &writerOutput{w: w}
}

func (out *writerOutput) WriteNumber(n *big.Int) error {
	_, err := fmt.Fprint(out.w, n.String())
	return err
}

func (out *writerOutput) WriteChar(r rune) error {
	_, err := fmt.Fprintf(out.w, "%c", r)
	return err
}
