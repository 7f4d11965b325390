package wire

import (
	"encoding/binary"
	"io"
)

// WriteClientMessage writes one fixed-width client record.
func WriteClientMessage(w io.Writer, m ClientMessage) error {
	return binary.Write(w, binary.BigEndian, &m)
}

// ReadClientMessage reads one fixed-width client record. A short read
// surfaces as the underlying io error (typically io.EOF or
// io.ErrUnexpectedEOF), which callers treat as a transport failure.
func ReadClientMessage(r io.Reader) (ClientMessage, error) {
	var m ClientMessage
	if err := binary.Read(r, binary.BigEndian, &m); err != nil {
		return ClientMessage{}, err
	}
	return m, nil
}

// WriteServerMessage writes one fixed-width server record. The whole
// struct is written regardless of Type so the record size never varies
// with message kind, matching the source's raw-struct wire copy.
func WriteServerMessage(w io.Writer, m ServerMessage) error {
	return binary.Write(w, binary.BigEndian, &m)
}

// ReadServerMessage reads one fixed-width server record.
func ReadServerMessage(r io.Reader) (ServerMessage, error) {
	var m ServerMessage
	if err := binary.Read(r, binary.BigEndian, &m); err != nil {
		return ServerMessage{}, err
	}
	return m, nil
}

