package playlist

import "strings"

// Version is the playlist schema version understood by the front-end.
const Version = "1.5"

// detectCore is the placeholder the front-end uses to pick an emulator core
// at launch time. This tool never matches cores itself.
const detectCore = "DETECT"

// Document is one playlist file in the front-end's LPL JSON format.
type Document struct {
	Version            string `json:"version"`
	DefaultCorePath    string `json:"default_core_path"`
	DefaultCoreName    string `json:"default_core_name"`
	LabelDisplayMode   int    `json:"label_display_mode"`
	RightThumbnailMode int    `json:"right_thumbnail_mode"`
	LeftThumbnailMode  int    `json:"left_thumbnail_mode"`
	ThumbnailMatchMode int    `json:"thumbnail_match_mode"`
	SortMode           int    `json:"sort_mode"`
	Items              []Item `json:"items"`
}

// Item is a single playlist record.
type Item struct {
	Path     string `json:"path"`
	Label    string `json:"label"`
	CorePath string `json:"core_path"`
	CoreName string `json:"core_name"`
	CRC32    string `json:"crc32"`
	DBName   string `json:"db_name"`
}

// NewDocument returns an empty playlist with the fixed schema defaults.
func NewDocument() Document {
	return Document{
		Version: Version,
		Items:   make([]Item, 0),
	}
}

// CRCField formats a catalog CRC for the playlist crc32 field. The front-end
// expects "<hex>|crc" with an uppercase checksum, or "|crc" when unknown.
func CRCField(crc string) string {
	return strings.ToUpper(strings.TrimSpace(crc)) + "|crc"
}

// DBName derives the playlist database name from the catalog header
// description.
func DBName(headerDescription string) string {
	headerDescription = strings.TrimSpace(headerDescription)
	if headerDescription == "" {
		return "playlist.lpl"
	}
	return headerDescription + ".lpl"
}
