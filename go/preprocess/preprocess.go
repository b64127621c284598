// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package preprocess rewrites raw IC10 program text into the form the chip
// package's parser consumes: comments stripped, STR(...)/HASH(...) macros
// expanded to literal numbers, and hex/binary literals rewritten to decimal.
package preprocess

import (
	"fmt"
	"hash/crc32"
	"regexp"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

var (
	commentRE = regexp.MustCompile(`#.*$`)
	strRE     = regexp.MustCompile(`STR\("([^"]*)"\)`)
	hashRE    = regexp.MustCompile(`HASH\("([^"]*)"\)`)
	binRE     = regexp.MustCompile(`%([01_]+)`)
	hexRE     = regexp.MustCompile(`\$([A-Fa-f0-9_]+)`)
)

// hashCache memoizes HASH("...") lookups: programs frequently reference the
// same device/item name literal many times, and hashing is pure given the
// text, so a small LRU spares the preprocessor from rehashing identical
// strings across lines and across repeated preprocess calls.
var hashCache, _ = lru.New[string, int32](256)

// Preprocess rewrites source per the chip's preprocessor contract and
// returns the rewritten text, one line per input line, ready for
// chip.Chip.LoadProgram. Returns an error naming the line and reason on the
// first malformed macro or literal.
func Preprocess(source string) (string, error) {
	lines := strings.Split(source, "\n")
	out := make([]string, len(lines))

	for i, line := range lines {
		line = commentRE.ReplaceAllString(line, "")

		var err error
		line, err = replaceAllFunc(strRE, line, func(text string) (string, error) {
			packed, perr := packASCII6(text)
			if perr != nil {
				return "", lineErr(i+1, perr)
			}
			return strconv.FormatFloat(float64(packed), 'f', -1, 64), nil
		})
		if err != nil {
			return "", err
		}

		line, err = replaceAllFunc(hashRE, line, func(text string) (string, error) {
			return strconv.FormatInt(int64(stringHash(text)), 10), nil
		})
		if err != nil {
			return "", err
		}

		line, err = replaceAllFunc(binRE, line, func(digits string) (string, error) {
			v, perr := parseBinary(digits)
			if perr != nil {
				return "", lineErr(i+1, perr)
			}
			return strconv.FormatInt(v, 10), nil
		})
		if err != nil {
			return "", err
		}

		line, err = replaceAllFunc(hexRE, line, func(digits string) (string, error) {
			v, perr := parseHex(digits)
			if perr != nil {
				return "", lineErr(i+1, perr)
			}
			return strconv.FormatInt(v, 10), nil
		})
		if err != nil {
			return "", err
		}

		out[i] = strings.TrimRight(line, " \t")
	}

	return strings.Join(out, "\n"), nil
}

// Lines is a convenience wrapper for callers that want []string, matching
// chip.Chip.LoadProgram's input shape.
func Lines(source string) ([]string, error) {
	processed, err := Preprocess(source)
	if err != nil {
		return nil, err
	}
	return strings.Split(processed, "\n"), nil
}

func lineErr(line int, err error) error {
	return fmt.Errorf("line %d: %w", line, err)
}

// replaceAllFunc applies fn to every capture group 1 match of re in s,
// substituting fn's return value, and stops at the first error.
func replaceAllFunc(re *regexp.Regexp, s string, fn func(string) (string, error)) (string, error) {
	var firstErr error
	result := re.ReplaceAllStringFunc(s, func(match string) string {
		if firstErr != nil {
			return match
		}
		sub := re.FindStringSubmatch(match)
		replacement, err := fn(sub[1])
		if err != nil {
			firstErr = err
			return match
		}
		return replacement
	})
	if firstErr != nil {
		return "", firstErr
	}
	return result, nil
}

// packASCII6 packs up to 6 ASCII bytes big-endian into an integer, matching
// STR("...")'s double-precision-safe packing.
func packASCII6(text string) (int64, error) {
	if text == "" {
		return 0, fmt.Errorf("STR(\"\") is empty")
	}
	if len(text) > 6 {
		return 0, fmt.Errorf("STR(%q) exceeds 6 characters", text)
	}
	var num int64
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c > 0x7F {
			return 0, fmt.Errorf("STR(%q) contains a non-ASCII byte", text)
		}
		num = (num << 8) | int64(c)
	}
	return num, nil
}

// stringHash is the CRC32/ISO-HDLC hash HASH("...") expands to, memoized by
// hashCache.
func stringHash(text string) int32 {
	if v, ok := hashCache.Get(text); ok {
		return v
	}
	v := int32(crc32.ChecksumIEEE([]byte(text)))
	hashCache.Add(text, v)
	return v
}

func parseBinary(digits string) (int64, error) {
	clean := strings.ReplaceAll(digits, "_", "")
	if clean == "" {
		return 0, fmt.Errorf("empty binary literal")
	}
	return strconv.ParseInt(clean, 2, 64)
}

func parseHex(digits string) (int64, error) {
	clean := strings.ReplaceAll(digits, "_", "")
	if clean == "" {
		return 0, fmt.Errorf("empty hexadecimal literal")
	}
	return strconv.ParseInt(clean, 16, 64)
}
