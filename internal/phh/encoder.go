package phh

import (
	"bytes"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// Encode writes the hand history to the provided writer in PHH TOML format.
// Optional fields are omitted when empty.
func Encode(w io.Writer, hand *HandHistory) error {
	if hand == nil {
		return fmt.Errorf("phh: hand history is nil")
	}

	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(hand)
}

// EncodeToBytes encodes and returns the result as bytes.
func EncodeToBytes(hand *HandHistory) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, hand); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteSections writes hands as a PHHS file, numbering sections from first
func WriteSections(w io.Writer, hands []*HandHistory, first int) error {
	for i, hand := range hands {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "[%d]\n", first+i); err != nil {
			return err
		}
		if err := Encode(w, hand); err != nil {
			return err
		}
	}
	return nil
}
