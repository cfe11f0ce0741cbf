// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"strings"

	"github.com/bitmark-inc/chunkwriter/fault"
)

// ContentType - informational tag describing the uploaded bytes
//
// the wire code is the ordinal
type ContentType uint8

// all content types
const (
	PNG ContentType = iota
	JPEG
	GIF
	WEBP
	TIFF
	BMP
	ICO
	PSD
	SVG
	HEIF
	PDF
	EPS
	RAW
	Unknown
)

var contentNames = [...]string{
	PNG:     "PNG",
	JPEG:    "JPEG",
	GIF:     "GIF",
	WEBP:    "WEBP",
	TIFF:    "TIFF",
	BMP:     "BMP",
	ICO:     "ICO",
	PSD:     "PSD",
	SVG:     "SVG",
	HEIF:    "HEIF",
	PDF:     "PDF",
	EPS:     "EPS",
	RAW:     "RAW",
	Unknown: "UNKNOWN",
}

// Valid - check the code is in range
func (c ContentType) Valid() bool {
	return c <= Unknown
}

// String - name of the content type
func (c ContentType) String() string {
	if !c.Valid() {
		return "*invalid*"
	}
	return contentNames[c]
}

// MarshalText - content type as its name
func (c ContentType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText - content type from its name
func (c *ContentType) UnmarshalText(s []byte) error {
	name := strings.ToUpper(string(s))
	for i, n := range contentNames {
		if n == name {
			*c = ContentType(i)
			return nil
		}
	}
	return fault.InvalidItem
}
