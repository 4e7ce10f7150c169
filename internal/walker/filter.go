package walker

import (
	"bytes"
	"strings"
)

// IsBinary checks if data appears to be binary by scanning for NUL bytes
// in the first 8KB, matching GNU grep behavior.
func IsBinary(data []byte) bool {
	limit := 8192
	if len(data) < limit {
		limit = len(data)
	}
	return bytes.IndexByte(data[:limit], 0) >= 0
}

// IsBinaryExtension returns true if the filename has an extension known to
// be a binary format. Skipping these avoids opening files that IsBinary
// would discard anyway. Also handles versioned shared libs like
// "libfoo.so.1.2.3".
func IsBinaryExtension(name string) bool {
	dot := strings.LastIndexByte(name, '.')
	if dot < 0 {
		return false
	}
	ext := name[dot:]
	if len(ext) == 2 {
		switch ext[1] {
		case 'a', 'o', 'z':
			return true
		}
	}
	if _, ok := binaryExts[ext]; ok {
		return true
	}
	if strings.Contains(name, ".so.") {
		return true
	}
	return false
}

// binaryExts is the set of file extensions known to be binary: compiled
// objects, archives, media, fonts, binary documents, and databases.
var binaryExts = map[string]struct{}{
	".so": {}, ".dylib": {}, ".dll": {}, ".exe": {}, ".bin": {},
	".elf": {}, ".class": {}, ".pyc": {}, ".pyo": {}, ".wasm": {},
	".gz": {}, ".bz2": {}, ".xz": {}, ".zst": {}, ".lz4": {},
	".zip": {}, ".tar": {}, ".rar": {}, ".7z": {}, ".deb": {},
	".rpm": {}, ".jar": {}, ".war": {},
	".png": {}, ".jpg": {}, ".jpeg": {}, ".gif": {}, ".bmp": {},
	".ico": {}, ".tif": {}, ".tiff": {}, ".webp": {}, ".psd": {},
	".mp3": {}, ".mp4": {}, ".ogg": {}, ".flac": {}, ".wav": {},
	".avi": {}, ".mkv": {}, ".webm": {}, ".mov": {},
	".ttf": {}, ".otf": {}, ".woff": {}, ".woff2": {}, ".eot": {},
	".pdf": {}, ".doc": {}, ".docx": {}, ".xls": {}, ".xlsx": {},
	".ppt": {}, ".pptx": {},
	".db": {}, ".sqlite": {}, ".mdb": {},
	".swp": {}, ".swo": {}, ".DS_Store": {},
}
