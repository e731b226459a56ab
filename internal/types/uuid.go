package types

import (
	"fmt"
	"strings"
	"sync"

	"github.com/oklog/ulid/v2"
	"github.com/teris-io/shortid"
)

// GenerateUUID returns a k-sortable unique identifier
func GenerateUUID() string {
	return ulid.Make().String()
}

// GenerateUUIDWithPrefix returns a k-sortable unique identifier
// with a prefix ex city_0ujsswThIGTUYm2K8FjOOfXtY1K
func GenerateUUIDWithPrefix(prefix string) string {
	if prefix == "" {
		return GenerateUUID()
	}
	return fmt.Sprintf("%s_%s", prefix, GenerateUUID())
}

var (
	sidGenerator *shortid.Shortid
	once         sync.Once
)

func initializeSID() {
	var err error
	sidGenerator, err = shortid.New(1, shortid.DefaultABC, 2342)
	if err != nil {
		panic("failed to initialize shortid generator: " + err.Error())
	}
}

// GenerateShortIDWithPrefix returns a short uppercase ID with a prefix,
// capped at 12 characters, e.g. `PRJ-X2AQ8R`. Used for human-facing codes.
func GenerateShortIDWithPrefix(prefix string) string {
	once.Do(initializeSID)

	id, err := sidGenerator.Generate()
	if err != nil {
		return ""
	}
	id = strings.ReplaceAll(id, "-", "")

	availableLen := 12 - len(prefix)
	if availableLen <= 0 {
		return ""
	}

	if len(id) > availableLen {
		id = id[:availableLen]
	}

	return strings.ToUpper(fmt.Sprintf("%s%s", prefix, id))
}

const (
	// Prefixes for all domains and entities

	UUID_PREFIX_CITY          = "city"
	UUID_PREFIX_LOCATION      = "loc"
	UUID_PREFIX_AMENITY       = "amen"
	UUID_PREFIX_FLOOR         = "floor"
	UUID_PREFIX_TOWER         = "tower"
	UUID_PREFIX_PROPERTY_TYPE = "ptype"
	UUID_PREFIX_ROOM          = "room"
	UUID_PREFIX_WASHROOM      = "wash"
	UUID_PREFIX_BUILDER       = "bldr"
	UUID_PREFIX_AGENT         = "agent"
	UUID_PREFIX_PROJECT       = "proj"
	UUID_PREFIX_UNIT_CONFIG   = "unit"
	UUID_PREFIX_PROJECT_MEDIA = "media"
	UUID_PREFIX_PROJECT_DOC   = "pdoc"
	UUID_PREFIX_FILE          = "file"
)

const (
	SHORT_ID_PREFIX_PROJECT = "PRJ-"
	SHORT_ID_PREFIX_FILE    = "FL-"
)
