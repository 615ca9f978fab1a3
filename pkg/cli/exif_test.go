package cli

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// buildJPEGOrientation wraps a minimal TIFF block carrying only the
// orientation tag in a JPEG APP1 segment.
func buildJPEGOrientation(order binary.ByteOrder, orientation uint16) []byte {
	var tiff bytes.Buffer
	if order == binary.BigEndian {
		tiff.Write([]byte{'M', 'M'})
	} else {
		tiff.Write([]byte{'I', 'I'})
	}
	binary.Write(&tiff, order, uint16(0x2A))
	binary.Write(&tiff, order, uint32(8)) // IFD0 right after the header

	binary.Write(&tiff, order, uint16(1)) // one entry
	binary.Write(&tiff, order, uint16(0x0112))
	binary.Write(&tiff, order, uint16(3)) // SHORT
	binary.Write(&tiff, order, uint32(1))
	// inline SHORT occupies the first two bytes of the value field in the
	// file's byte order
	binary.Write(&tiff, order, orientation)
	binary.Write(&tiff, order, uint16(0))
	binary.Write(&tiff, order, uint32(0)) // no next IFD

	var out bytes.Buffer
	out.Write([]byte{0xFF, 0xD8, 0xFF, 0xE1})
	binary.Write(&out, binary.BigEndian, uint16(2+6+tiff.Len()))
	out.Write([]byte("Exif\x00\x00"))
	out.Write(tiff.Bytes())
	out.Write([]byte{0xFF, 0xD9})
	return out.Bytes()
}

func TestOrientationLittleEndian(t *testing.T) {
	b := buildJPEGOrientation(binary.LittleEndian, 6)
	o, err := extractJPEGOrientation(b)
	if err != nil {
		t.Fatalf("extractJPEGOrientation failed: %v", err)
	}
	if o != 6 {
		t.Fatalf("expected orientation 6, got %d", o)
	}
}

func TestOrientationBigEndian(t *testing.T) {
	b := buildJPEGOrientation(binary.BigEndian, 3)
	o, err := extractJPEGOrientation(b)
	if err != nil {
		t.Fatalf("extractJPEGOrientation failed: %v", err)
	}
	if o != 3 {
		t.Fatalf("expected orientation 3, got %d", o)
	}
}

func TestOrientationOutOfRange(t *testing.T) {
	b := buildJPEGOrientation(binary.LittleEndian, 9)
	if _, err := extractJPEGOrientation(b); err == nil {
		t.Fatalf("expected error for orientation 9")
	}
}

func TestOrientationNoExifSegment(t *testing.T) {
	// bare SOI/EOI with no APP1
	b := []byte{0xFF, 0xD8, 0xFF, 0xD9}
	if _, err := extractJPEGOrientation(b); err == nil {
		t.Fatalf("expected error for JPEG without EXIF")
	}
}

func TestOrientationMalformedIFDOffset(t *testing.T) {
	var tiff bytes.Buffer
	tiff.Write([]byte{'I', 'I'})
	binary.Write(&tiff, binary.LittleEndian, uint16(0x2A))
	binary.Write(&tiff, binary.LittleEndian, uint32(0xFFFFFF)) // bogus IFD offset

	var out bytes.Buffer
	out.Write([]byte{0xFF, 0xD8, 0xFF, 0xE1})
	binary.Write(&out, binary.BigEndian, uint16(2+6+tiff.Len()))
	out.Write([]byte("Exif\x00\x00"))
	out.Write(tiff.Bytes())
	out.Write([]byte{0xFF, 0xD9})

	if _, err := extractJPEGOrientation(out.Bytes()); err == nil {
		t.Fatalf("expected error for out-of-range IFD offset")
	}
}
