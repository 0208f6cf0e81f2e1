package utils

import (
	"io"
	"os"
	"strings"
)

// probeLength defines the maximum number of bytes read when classifying file content.
const probeLength = 1024

// allowedTextBytes marks every byte value that may appear in text content:
// the printable range 0x20-0xFF excluding DEL, plus a short whitelist of
// control characters (bell, backspace, tab, newline, form feed, carriage
// return, escape).
var allowedTextBytes = buildAllowedTextBytes()

func buildAllowedTextBytes() [256]bool {
	var allowed [256]bool
	for byteValue := 0x20; byteValue <= 0xFF; byteValue++ {
		allowed[byteValue] = true
	}
	allowed[0x7F] = false
	for _, controlByte := range []byte{7, 8, 9, 10, 12, 13, 27} {
		allowed[controlByte] = true
	}
	return allowed
}

// IsText reports whether the provided byte slice appears to contain text data.
func IsText(data []byte) bool {
	for _, byteValue := range data {
		if !allowedTextBytes[byteValue] {
			return false
		}
	}
	return true
}

// IsFileText reads up to probeLength bytes from the file at path and determines
// if the content appears to be text. Unreadable files are reported as not text.
func IsFileText(path string) bool {
	fileHandle, openError := os.Open(path)
	if openError != nil {
		return false
	}
	defer fileHandle.Close()

	buffer := make([]byte, probeLength)
	bytesRead, readError := fileHandle.Read(buffer)
	if readError != nil && readError != io.EOF {
		return false
	}
	return IsText(buffer[:bytesRead])
}

// DecodeLenient converts raw bytes to a string, replacing invalid UTF-8
// sequences with the Unicode replacement character instead of failing.
func DecodeLenient(data []byte) string {
	return strings.ToValidUTF8(string(data), "�")
}
