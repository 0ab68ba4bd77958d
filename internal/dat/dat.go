package dat

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
)

const xsiNamespace = "http://www.w3.org/2001/XMLSchema-instance"

// File is a parsed DAT catalog document.
type File struct {
	XMLName xml.Name   `xml:"datafile"`
	Attrs   []xml.Attr `xml:",any,attr"`
	Header  Header     `xml:"header"`
	Games   []Game     `xml:"game"`
}

// Header contains catalog metadata. Description names the ROM set and is
// reused as the playlist database name.
type Header struct {
	Name        string `xml:"name"`
	Description string `xml:"description"`
	Version     string `xml:"version"`
	Author      string `xml:"author"`
	Homepage    string `xml:"homepage"`
	URL         string `xml:"url"`
}

// Game is a single game entry in a DAT catalog. CloneOfID links clone
// entries to their parent for merged ROM sets.
type Game struct {
	Name        string `xml:"name,attr"`
	ID          string `xml:"id,attr"`
	CloneOfID   string `xml:"cloneofid,attr"`
	Description string `xml:"description"`
	ROMs        []ROM  `xml:"rom"`
}

// ROM describes one constituent file of a game. Only the first ROM of a game
// is consumed when building playlists; the rest are retained for completeness.
type ROM struct {
	Name string `xml:"name,attr"`
	Size int64  `xml:"size,attr"`
	CRC  string `xml:"crc,attr"`
	MD5  string `xml:"md5,attr"`
	SHA1 string `xml:"sha1,attr"`
}

// Parse reads and parses a DAT catalog file.
func Parse(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return parse(data)
}

// ParseReader parses a DAT catalog from r.
func ParseReader(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*File, error) {
	var f File
	if err := xml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog XML: %w", err)
	}
	if len(f.Games) == 0 {
		return nil, fmt.Errorf("catalog contains no game entries")
	}
	return &f, nil
}

// SchemaLocation returns the schema URL declared by the document's
// xsi:schemaLocation attribute, or "" when none is declared. The attribute
// value is a "namespace url" pair; only the url half is returned.
func (f *File) SchemaLocation() string {
	for _, attr := range f.Attrs {
		if attr.Name.Space != xsiNamespace || attr.Name.Local != "schemaLocation" {
			continue
		}
		parts := strings.Fields(attr.Value)
		if len(parts) == 2 {
			return parts[1]
		}
	}
	return ""
}

// ParentIndex maps game IDs to game names. Merged-set resolution uses it to
// collapse clone entries into their parent's archive.
func (f *File) ParentIndex() map[string]string {
	index := make(map[string]string, len(f.Games))
	for _, game := range f.Games {
		if game.ID != "" {
			index[game.ID] = game.Name
		}
	}
	return index
}
