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

// Package profile provides ICC profiles describing the colors produced by
// package srm.
//
// The colors returned by srm.SRGB are gamma-encoded sRGB values.  Callers
// which embed swatches into documents or images can attach one of the
// profiles from this package to make the color space explicit.
//
// The profiles are generated from the same primaries and transfer curve
// that srm uses for its conversions.
package profile

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"seehuhn.de/go/icc"

	"seehuhn.de/go/srm/internal/cie"
)

// Version selects the ICC specification version of a profile.
type Version int

// These are the supported profile versions.
const (
	V2 Version = 2
	V4 Version = 4
)

const (
	description = "sRGB (srm)"
	copyright   = "No copyright, use freely"
)

// Tags used in matrix/TRC display profiles.
const (
	redColorant   icc.TagType = 0x7258595A // "rXYZ"
	greenColorant icc.TagType = 0x6758595A // "gXYZ"
	blueColorant  icc.TagType = 0x6258595A // "bXYZ"
	redTRC        icc.TagType = 0x72545243 // "rTRC"
	greenTRC      icc.TagType = 0x67545243 // "gTRC"
	blueTRC       icc.TagType = 0x62545243 // "bTRC"
	mediaWhite    icc.TagType = 0x77747074 // "wtpt"
)

// created is the creation date stored in the profile header.  It is fixed,
// so that the profile data does not change between runs.
var created = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

// SRGB returns a newly encoded sRGB display profile in the given ICC version.
// SRGB panics if v is not [V2] or [V4].
func SRGB(v Version) []byte {
	p := &icc.Profile{
		Class:           icc.DisplayDeviceProfile,
		ColorSpace:      icc.RGBSpace,
		PCS:             icc.PCSXYZSpace,
		CreationDate:    created,
		RenderingIntent: icc.Perceptual,
		TagData:         make(map[icc.TagType][]byte),
	}

	var trc []byte
	switch v {
	case V2:
		p.Version = icc.Version2_1_0
		p.TagData[icc.ProfileDescription] = encodeDesc(description)
		p.TagData[icc.Copyright] = encodeText(copyright)
		trc = encodeCurve(1024)
	case V4:
		p.Version = icc.Version4_3_0
		p.TagData[icc.ProfileDescription] = encodeMLUC(description)
		p.TagData[icc.Copyright] = encodeMLUC(copyright)
		trc = encodeSRGBPara()
	default:
		panic(fmt.Sprintf("profile: unsupported ICC version %d", v))
	}

	c := cie.Colorants()
	p.TagData[redColorant] = encodeXYZ(c[0])
	p.TagData[greenColorant] = encodeXYZ(c[1])
	p.TagData[blueColorant] = encodeXYZ(c[2])
	p.TagData[redTRC] = trc
	p.TagData[greenTRC] = trc
	p.TagData[blueTRC] = trc
	p.TagData[mediaWhite] = encodeXYZ(cie.WhiteD50)
	p.TagData[icc.ChromaticAdaption] = encodeSF32(cie.Adaptation())

	return p.Encode()
}

var errMissing = errors.New("profile: missing profile data")

// Check verifies that data is an ICC profile for a three-component RGB
// color space, i.e. that it can be used to tag srm colors.
// The data is not modified.
func Check(data []byte) error {
	if len(data) == 0 {
		return errMissing
	}

	// icc.Decode clears some header fields while verifying the profile ID.
	p, err := icc.Decode(bytes.Clone(data))
	if err != nil {
		return fmt.Errorf("profile: %w", err)
	}
	if p.ColorSpace != icc.RGBSpace {
		return fmt.Errorf("profile: expected RGB color space, got %v", p.ColorSpace)
	}
	if n := p.ColorSpace.NumComponents(); n != 3 {
		return fmt.Errorf("profile: expected 3 components, got %d", n)
	}
	if p.CheckSum == icc.CheckSumInvalid {
		return errors.New("profile: invalid profile ID")
	}
	return nil
}
