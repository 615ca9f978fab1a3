package cli

import (
	"encoding/binary"
	"fmt"
)

// Minimal EXIF support: this tool only needs the orientation tag (0x0112) so
// JPEGs shot in portrait land upright in the pipeline. The reader walks the
// JPEG APP1 segment to the TIFF header and scans IFD0 entries; it does not
// follow Exif/GPS sub-IFDs.

// findTIFFStart scans JPEG segments for an APP1 Exif block and returns the
// offset where the TIFF header begins, or an error if none exists.
func findTIFFStart(data []byte) (int, error) {
	if len(data) < 4 {
		return -1, fmt.Errorf("data too short")
	}
	i := 2 // skip initial 0xFF 0xD8
	for i+4 < len(data) {
		if data[i] != 0xFF {
			i++
			continue
		}
		marker := data[i+1]
		if marker == 0xDA { // start of scan
			break
		}
		segLen := int(data[i+2])<<8 | int(data[i+3])
		if marker == 0xE1 && segLen >= 8 {
			if i+10 <= len(data) && string(data[i+4:i+10]) == "Exif\x00\x00" {
				return i + 10, nil
			}
		}
		if segLen <= 2 {
			i += 2
		} else {
			i += 2 + segLen
		}
	}
	return -1, fmt.Errorf("no exif segment")
}

// extractJPEGOrientation returns the EXIF orientation (1..8) from JPEG bytes.
func extractJPEGOrientation(data []byte) (int, error) {
	tiffStart, err := findTIFFStart(data)
	if err != nil {
		return 0, err
	}
	if tiffStart+8 > len(data) {
		return 0, fmt.Errorf("tiff header truncated")
	}
	var order binary.ByteOrder
	switch {
	case data[tiffStart] == 'M' && data[tiffStart+1] == 'M':
		order = binary.BigEndian
	case data[tiffStart] == 'I' && data[tiffStart+1] == 'I':
		order = binary.LittleEndian
	default:
		return 0, fmt.Errorf("unknown tiff byte order")
	}
	if order.Uint16(data[tiffStart+2:tiffStart+4]) != 0x002A {
		return 0, fmt.Errorf("invalid tiff magic")
	}
	ifdOff := int(order.Uint32(data[tiffStart+4 : tiffStart+8]))
	absIfd := tiffStart + ifdOff
	if ifdOff <= 0 || absIfd+2 > len(data) {
		return 0, fmt.Errorf("ifd out of range")
	}
	nEntries := int(order.Uint16(data[absIfd : absIfd+2]))
	for e := 0; e < nEntries; e++ {
		ent := absIfd + 2 + e*12
		if ent+12 > len(data) {
			break
		}
		tag := order.Uint16(data[ent : ent+2])
		typ := order.Uint16(data[ent+2 : ent+4])
		if tag != 0x0112 {
			continue
		}
		if typ != 3 { // orientation is a SHORT
			return 0, fmt.Errorf("unexpected orientation type %d", typ)
		}
		v := int(order.Uint16(data[ent+8 : ent+10]))
		if v >= 1 && v <= 8 {
			return v, nil
		}
		return 0, fmt.Errorf("orientation value out of range: %d", v)
	}
	return 0, fmt.Errorf("orientation tag not found")
}
