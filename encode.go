package mockup

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/jpeg"
	"io"
)

const (
	// JPEGQuality is the encoder quality for all written prints.
	JPEGQuality = 95
	// OutputDPI is the density declared in every output file.
	OutputDPI = 300
)

// EncodeJPEG writes img as a JPEG with the given quality and a JFIF
// density header declaring dpi dots per inch. The stdlib encoder emits no
// APP0 segment at all, so the density header is spliced in right after the
// start-of-image marker.
func EncodeJPEG(w io.Writer, img image.Image, quality, dpi int) error {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("encode jpeg: %w", err)
	}

	data := buf.Bytes()
	if len(data) < 2 || data[0] != 0xff || data[1] != 0xd8 {
		return fmt.Errorf("unexpected jpeg stream header")
	}

	if _, err := w.Write(data[:2]); err != nil {
		return err
	}
	if _, err := w.Write(jfifSegment(dpi)); err != nil {
		return err
	}
	_, err := w.Write(data[2:])
	return err
}

// jfifSegment builds a JFIF 1.02 APP0 segment with square pixel density in
// dots per inch and no thumbnail.
func jfifSegment(dpi int) []byte {
	seg := []byte{
		0xff, 0xe0, // APP0 marker
		0x00, 0x10, // segment length, marker excluded
		'J', 'F', 'I', 'F', 0x00,
		0x01, 0x02, // JFIF version
		0x01,       // density units: dots per inch
		0x00, 0x00, // X density
		0x00, 0x00, // Y density
		0x00, 0x00, // thumbnail dimensions
	}
	binary.BigEndian.PutUint16(seg[12:14], uint16(dpi))
	binary.BigEndian.PutUint16(seg[14:16], uint16(dpi))
	return seg
}
