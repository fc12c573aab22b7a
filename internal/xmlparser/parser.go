// =============================================================================
// XML to RPG Cards Converter - Item Catalog Parser
// =============================================================================
//
// This module parses the XML item catalog into in-memory item records keyed
// by their lower-cased name.
//
// EXPECTED DOCUMENT:
//
//   <compendium>                          <!-- any root element name -->
//     <item>
//       <name>Longsword +1</name>
//       <type>M</type>
//       <dmg1>1d8</dmg1>
//       <dmg2>1d10</dmg2>
//       <dmgType>S</dmgType>
//       <property>V</property>
//       <property>M</property>            <!-- repeats join with newline -->
//       <modifier>melee damage +1</modifier>
//       <text>...</text>
//     </item>
//     <spell>...</spell>                  <!-- non-item elements are skipped -->
//   </compendium>
//
// LOAD PIPELINE (per item):
//   1. Collect each recognized field (types.Fields), newline-joining repeats
//   2. Trim name and type
//   3. Apply the load-time rules (treasure name split, damage bonus merge,
//      damage type merge)
//   4. Store under the normalized name; the last item with a name wins
//
// =============================================================================

package xmlparser

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ginjaninja78/xml-to-rpg-cards/internal/config"
	"github.com/ginjaninja78/xml-to-rpg-cards/internal/types"
)

// itemTag is the element name of a catalog entry.
const itemTag = "item"

// =============================================================================
// ERRORS
// =============================================================================

// ParseError reports a catalog that is not well-formed XML or has no readable
// root element.
type ParseError struct {
	// Path is the catalog file, or empty when parsing a bare reader.
	Path string

	// Err is the underlying decoder error.
	Err error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("malformed item catalog: %v", e.Err)
	}
	return fmt.Sprintf("malformed item catalog %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// =============================================================================
// OPTIONS
// =============================================================================

// Options controls how items are normalized during load.
type Options struct {
	// Rules run in order on every item after its fields are read.
	Rules []Rule

	// Logger receives debug diagnostics. Nil means slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns the options built from cfg: the treasure split, the
// damage bonus merge with cfg's prefixes, and the damage type merge with
// cfg's names.
func DefaultOptions(cfg *config.Config) Options {
	return Options{
		Rules: []Rule{
			TreasureNameRule{},
			DamageBonusRule{Prefixes: cfg.DamageBonus.Prefixes},
			DamageTypeRule{Names: cfg.DamageTypes},
		},
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// =============================================================================
// XML DOCUMENT STRUCTURE
// =============================================================================

// xmlNode captures any element with its direct character data and children.
type xmlNode struct {
	XMLName  xml.Name
	Text     string    `xml:",chardata"`
	Children []xmlNode `xml:",any"`
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the catalog at path and parses it.
//
// PARAMETERS:
//   - path: The XML catalog file.
//   - opts: The normalization options.
//
// RETURNS:
//   - The catalog keyed by normalized item name.
//   - An error if the file cannot be read, or a *ParseError if it is not
//     well-formed XML.
func Load(path string, opts Options) (Catalog, error) {
	// Read fully and release the handle before parsing.
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read item catalog: %w", err)
	}

	catalog, err := Parse(bytes.NewReader(data), opts)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		}
		return nil, err
	}

	opts.logger().Info("item catalog loaded", "path", path, "items", len(catalog))
	return catalog, nil
}

// Parse parses a catalog document from r. Documents declaring a non-UTF-8
// encoding are transcoded. Anything but comments, processing instructions
// or whitespace after the root element is an error.
func Parse(r io.Reader, opts Options) (Catalog, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	var root xmlNode
	if err := dec.Decode(&root); err != nil {
		return nil, &ParseError{Err: err}
	}
	if err := checkTrailing(dec); err != nil {
		return nil, &ParseError{Err: err}
	}

	log := opts.logger()
	catalog := make(Catalog)

	for i, node := range root.Children {
		if node.XMLName.Local != itemTag {
			continue
		}

		item := readItem(node)
		for _, rule := range opts.Rules {
			rule.Apply(item)
		}

		if item.Name == "" {
			log.Debug("skipping item without a name", "position", i+1)
			continue
		}

		key := Key(item.Name)
		if prev, exists := catalog[key]; exists {
			log.Debug("duplicate item name, keeping the later one",
				"name", item.Name, "previous_type", prev.Type, "type", item.Type)
		}
		catalog[key] = item
	}

	return catalog, nil
}

// checkTrailing consumes the rest of the document after the root element.
func checkTrailing(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			return fmt.Errorf("junk after document element: <%s> at offset %d", t.Name.Local, dec.InputOffset())
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return fmt.Errorf("junk after document element: text at offset %d", dec.InputOffset())
			}
		}
	}
}

// readItem collects every recognized field of one <item> element.
func readItem(node xmlNode) *types.Item {
	item := &types.Item{}

	for _, field := range types.Fields {
		var values []string
		for _, child := range node.Children {
			if child.XMLName.Local == field.Key {
				values = append(values, child.Text)
			}
		}
		item.Set(field.Key, strings.Join(values, "\n"))
	}

	item.Name = strings.TrimSpace(item.Name)
	item.Type = strings.TrimSpace(item.Type)

	return item
}

// =============================================================================
// CATALOG
// =============================================================================

// Catalog maps normalized item names to item records.
type Catalog map[string]*types.Item

// Key normalizes an item name for lookup.
func Key(name string) string {
	return cases.Lower(language.AmericanEnglish).String(strings.TrimSpace(name))
}

// Get looks up an item by name, case-insensitively.
func (c Catalog) Get(name string) (*types.Item, bool) {
	item, ok := c[Key(name)]
	return item, ok
}

// Search returns the items whose name contains text, case-insensitively,
// sorted by name. An empty text matches every item.
func (c Catalog) Search(text string) []*types.Item {
	needle := Key(text)

	var found []*types.Item
	for key, item := range c {
		if strings.Contains(key, needle) {
			found = append(found, item)
		}
	}

	sort.Slice(found, func(i, j int) bool {
		if found[i].Name != found[j].Name {
			return found[i].Name < found[j].Name
		}
		return found[i].Type < found[j].Type
	})

	return found
}
