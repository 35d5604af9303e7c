package kocombus

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/kkweon/kocom-bridge/internal/kocomasdu"
)

// HeaderKind distinguishes a frame that arrived under the canonical
// header from one recovered via a legacy-header transform, and both
// from a frame whose tail didn't land where the body length said it
// would.
type HeaderKind int

const (
	HeaderNormal HeaderKind = iota
	HeaderLegacy
	HeaderMalformedTail
)

var ErrSocketClosed = errors.New("kocombus: socket closed while reading")

type commStatus int

const (
	waitHead commStatus = iota
	waitBody
	waitTail
)

// readState accumulates one frame attempt's bytes, mirroring the
// original reader's Chunk helper.
type readState struct {
	status     commStatus
	headerName string
	needLen    int
	head       []byte
	body       []byte
	tail       []byte
	prev       byte
	total      int
}

func newReadState() *readState {
	return &readState{
		status:  waitHead,
		needLen: kocomasdu.FrameLen - 4, // 2 header bytes, 2 footer bytes
	}
}

var headerStarts = kocomasdu.FirstHeaderBytes()

// readUntilTail reads one byte at a time until either a full
// kocomasdu.FrameLen-worth of bytes has been consumed or the 0x0d 0x0d
// footer pair is seen. It returns whatever the state machine had
// accumulated, valid or not — the caller decides what "valid" means.
func readUntilTail(br *bufio.Reader) (*readState, error) {
	st := newReadState()

	for st.total < kocomasdu.FrameLen {
		b, err := br.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("kocombus: %w: %v", ErrSocketClosed, err)
		}

		if st.total == 0 && st.status == waitHead {
			if _, ok := headerStarts[b]; !ok {
				continue
			}
		}

		st.tail = append(st.tail, b)
		st.total++
		pair := [2]byte{st.prev, b}

		if pair == [2]byte{kocomasdu.FooterByte, kocomasdu.FooterByte} {
			break
		}

		switch st.status {
		case waitHead:
			for _, hdr := range kocomasdu.HeaderTable {
				if pair == [2]byte{hdr.B1, hdr.B2} {
					st.headerName = hdr.Name
					st.needLen = hdr.BodyLen
					st.head = append([]byte(nil), st.tail[len(st.tail)-2:]...)
					st.tail = nil
					st.status = waitBody
					break
				}
			}
		case waitBody:
			st.body = append(st.body, b)
			if len(st.body) == st.needLen {
				st.status = waitTail
				st.tail = nil
			}
		}

		st.prev = b
	}
	return st, nil
}

// NextFrame reads one complete frame from br, applying the
// legacy-header checksum-recovery transforms when the frame's checksum
// doesn't validate against its raw body. These transforms are kept
// exactly as observed on the wire: which byte gets prepended, and in
// which order, depends on the specific legacy header or leading body
// byte and is not a general algorithm.
func NextFrame(br *bufio.Reader) (HeaderKind, kocomasdu.Frame, error) {
	for {
		st, err := readUntilTail(br)
		if err != nil {
			return HeaderMalformedTail, kocomasdu.Frame{}, err
		}
		if st.status != waitTail {
			// footer arrived before the body filled up: noise, retry.
			continue
		}

		body, ok := recoverBody(st.headerName, st.head, st.body)
		if !ok {
			continue
		}

		kind := HeaderNormal
		if len(st.tail) != 2 || st.tail[0] != kocomasdu.FooterByte || st.tail[1] != kocomasdu.FooterByte {
			kind = HeaderMalformedTail
		} else if st.headerName != kocomasdu.MainHeader {
			kind = HeaderLegacy
		}

		frame, err := kocomasdu.ParseFrame(body)
		if err != nil {
			continue
		}
		return kind, frame, nil
	}
}

// recoverBody validates body's checksum as-is, and if that fails,
// applies the one legacy-header transform that matches headerName (or
// the leading body byte, for header variants with no dedicated rule).
// ok is false when no transform produces a valid checksum, meaning the
// caller should discard this attempt and resynchronise on the next
// header.
func recoverBody(headerName string, head, body []byte) ([]byte, bool) {
	if kocomasdu.VerifyChecksum(body) {
		return body, true
	}
	if headerName == kocomasdu.MainHeader {
		return nil, false
	}

	var altBody []byte
	special := false
	switch {
	case headerName == "5530" || headerName == "D530":
		altBody = append([]byte{0x30}, body...)
		special = true
	case headerName == "55E2":
		altBody = append([]byte{0x0c}, body...)
	case headerName == "55EA":
		altBody = append([]byte{0x0d}, body...)
	case len(body) > 0 && body[0] == 0xdc:
		altBody = append([]byte{0x30}, body...)
		special = true
	case len(body) > 0 && body[0] == 0xe2:
		altBody = append([]byte{0xd5, 0x55}, body...)
	default:
		altBody = append(append([]byte{}, head...), body...)
	}

	if !kocomasdu.VerifyChecksum(altBody) {
		return nil, false
	}

	switch {
	case special:
		return altBody, true
	case headerName == "55E2" || headerName == "55EA":
		return append([]byte{0x55, 0x30}, body...), true
	default:
		return altBody[1:], true
	}
}

// Reader wraps an io.Reader with the buffering NextFrame needs.
func Reader(r io.Reader) *bufio.Reader {
	return bufio.NewReaderSize(r, 256)
}
