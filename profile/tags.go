// seehuhn.de/go/srm - sRGB display colors for SRM beer color ratings
// Copyright (C) 2026  The srm Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package profile

import (
	"encoding/binary"
	"math"
	"unicode/utf16"

	"golang.org/x/image/math/f64"

	"seehuhn.de/go/srm/internal/cie"
)

// tagHeader starts a tag of the given type: the four byte type signature,
// followed by four reserved bytes.
func tagHeader(sig string, size int) []byte {
	buf := make([]byte, 0, size)
	buf = append(buf, sig...)
	return append(buf, 0, 0, 0, 0)
}

func appendS15Fixed16(buf []byte, x float64) []byte {
	return binary.BigEndian.AppendUint32(buf, uint32(int32(math.Round(x*65536))))
}

// encodeXYZ encodes a single XYZNumber as an XYZType tag.
func encodeXYZ(v f64.Vec3) []byte {
	buf := tagHeader("XYZ ", 20)
	for _, x := range v {
		buf = appendS15Fixed16(buf, x)
	}
	return buf
}

// encodeSF32 encodes a row-major 3×3 matrix as an s15Fixed16ArrayType tag.
func encodeSF32(m f64.Mat3) []byte {
	buf := tagHeader("sf32", 44)
	for _, x := range m {
		buf = appendS15Fixed16(buf, x)
	}
	return buf
}

// encodeCurve samples the sRGB decoding function at n equally spaced points
// and encodes the result as a curveType tag.
func encodeCurve(n int) []byte {
	buf := tagHeader("curv", 12+2*n)
	buf = binary.BigEndian.AppendUint32(buf, uint32(n))
	for i := range n {
		y := cie.DecodeSRGB(float64(i) / float64(n-1))
		buf = binary.BigEndian.AppendUint16(buf, uint16(math.Round(y*65535)))
	}
	return buf
}

// encodeSRGBPara encodes the sRGB decoding function as a
// parametricCurveType tag of function type 3:
//
//	Y = (aX+b)^g  for X >= d
//	Y = cX        for X < d
func encodeSRGBPara() []byte {
	buf := tagHeader("para", 32)
	buf = binary.BigEndian.AppendUint16(buf, 3)
	buf = append(buf, 0, 0)
	for _, x := range []float64{2.4, 1 / 1.055, 0.055 / 1.055, 1 / 12.92, 0.04045} {
		buf = appendS15Fixed16(buf, x)
	}
	return buf
}

// encodeText encodes an ASCII string as a textType tag.
func encodeText(s string) []byte {
	buf := tagHeader("text", 8+len(s)+1)
	buf = append(buf, s...)
	return append(buf, 0)
}

// encodeDesc encodes an ASCII string as an ICC version 2
// textDescriptionType tag.  The Unicode and ScriptCode parts are left empty.
func encodeDesc(s string) []byte {
	buf := tagHeader("desc", 12+len(s)+1+8+3+67)
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(s)+1))
	buf = append(buf, s...)
	buf = append(buf, 0)
	buf = binary.BigEndian.AppendUint32(buf, 0) // Unicode language code
	buf = binary.BigEndian.AppendUint32(buf, 0) // Unicode count
	buf = binary.BigEndian.AppendUint16(buf, 0) // ScriptCode code
	buf = append(buf, 0)                        // ScriptCode count
	return append(buf, make([]byte, 67)...)
}

// encodeMLUC encodes s as a multiLocalizedUnicodeType tag with a single
// en_US record.
func encodeMLUC(s string) []byte {
	u := utf16.Encode([]rune(s))
	buf := tagHeader("mluc", 28+2*len(u))
	buf = binary.BigEndian.AppendUint32(buf, 1)  // number of records
	buf = binary.BigEndian.AppendUint32(buf, 12) // record size
	buf = append(buf, "enUS"...)
	buf = binary.BigEndian.AppendUint32(buf, uint32(2*len(u)))
	buf = binary.BigEndian.AppendUint32(buf, 28)
	for _, c := range u {
		buf = binary.BigEndian.AppendUint16(buf, c)
	}
	return buf
}
