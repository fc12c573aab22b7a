package converter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/ginjaninja78/xml-to-rpg-cards/internal/config"
	"github.com/ginjaninja78/xml-to-rpg-cards/internal/filterlist"
	"github.com/ginjaninja78/xml-to-rpg-cards/internal/renderer"
	"github.com/ginjaninja78/xml-to-rpg-cards/internal/types"
	"github.com/ginjaninja78/xml-to-rpg-cards/internal/xmlparser"
)

const catalogXML = `<compendium>
  <item>
    <name>Potion of Healing</name>
    <type>P</type>
    <text>Heals 2d4+2 hit points.</text>
    <text>Source: Basic Rules</text>
  </item>
  <item>
    <name>Rope, Hempen (50 feet)</name>
    <type>G</type>
    <weight>10</weight>
    <value>1 gp</value>
  </item>
  <item>
    <name>25 gp - Gold Ring</name>
    <type>$</type>
  </item>
</compendium>`

// plain leaves words alone so card contents are easy to compare.
type plain struct{}

func (plain) Hyphenate(word string) string { return word }

type ConverterSuite struct {
	suite.Suite
	converter *Converter
}

func (s *ConverterSuite) SetupTest() {
	cfg := config.Default()

	catalog, err := xmlparser.Parse(strings.NewReader(catalogXML), xmlparser.DefaultOptions(cfg))
	s.Require().NoError(err)

	r := renderer.New(nil, plain{}, renderer.OptionsFromConfig(cfg))
	s.converter = New(catalog, r)
}

func (s *ConverterSuite) TestPotionOfHealing() {
	result := s.converter.ConvertLines([]string{"Potion of Healing"}, nil)

	s.Require().Len(result.Cards, 1)
	s.Empty(result.Missing)

	card := result.Cards[0]
	s.Equal("Potion of Healing", card.Title)
	s.Equal("drink-me", card.Icon)
	s.Equal("maroon", card.Color)
	s.Equal(1, card.Count)
	s.Equal([]string{
		"subtitle | Potion",
		"rule",
		"justify | Heals 2d4+2 hit points.",
		"fill",
		"rule",
		"center | Basic Rules",
	}, card.Contents)
}

func (s *ConverterSuite) TestCountAndMissing() {
	result := s.converter.ConvertLines([]string{
		"3 Potion of Healing",
		"Wand of Nonsense",
	}, nil)

	s.Require().Len(result.Cards, 1)
	s.Equal(3, result.Cards[0].Count)
	s.Equal([]string{"Wand of Nonsense"}, result.Missing)

	s.Equal(2, result.Stats.Requested)
	s.Equal(1, result.Stats.Rendered)
	s.Equal(3, result.Stats.Copies)
	s.Equal(1, result.Stats.Missing)
}

func (s *ConverterSuite) TestMissingUnaffectedByBlankAndCommentLines() {
	result := s.converter.ConvertLines([]string{
		"",
		"# Wand of Nonsense",
		"Wand of Nonsense",
		"   ",
		"# trailing comment",
	}, nil)

	s.Empty(result.Cards)
	s.Equal([]string{"Wand of Nonsense"}, result.Missing)
	s.Equal(1, result.Stats.Requested)
}

func (s *ConverterSuite) TestMissingNameIsCountStripped() {
	result := s.converter.ConvertLines([]string{"4 Bag of Nonsense"}, nil)
	s.Equal([]string{"Bag of Nonsense"}, result.Missing)
}

func (s *ConverterSuite) TestCaseInsensitiveLookup() {
	result := s.converter.ConvertLines([]string{"2 POTION OF HEALING", "rope, hempen (50 FEET)"}, nil)

	s.Require().Len(result.Cards, 2)
	s.Equal("Potion of Healing", result.Cards[0].Title)
	s.Equal(2, result.Cards[0].Count)
	s.Equal("Rope, Hempen (50 feet)", result.Cards[1].Title)
}

func (s *ConverterSuite) TestOutputFollowsFilterOrder() {
	result := s.converter.ConvertLines([]string{
		"Gold Ring",
		"Unknown A",
		"Potion of Healing",
		"Unknown B",
		"Potion of Healing",
	}, nil)

	titles := make([]string, 0, len(result.Cards))
	for _, c := range result.Cards {
		titles = append(titles, c.Title)
	}
	s.Equal([]string{"Gold Ring", "Potion of Healing", "Potion of Healing"}, titles)
	s.Equal([]string{"Unknown A", "Unknown B"}, result.Missing)
}

func (s *ConverterSuite) TestTreasureIsFoundByDisplayName() {
	result := s.converter.ConvertLines([]string{"Gold Ring"}, nil)

	s.Require().Len(result.Cards, 1)
	s.Equal("Gold Ring", result.Cards[0].Title)
	s.Contains(result.Cards[0].Contents, "property | Value | 25 gp")
}

func (s *ConverterSuite) TestExcludedFields() {
	result := s.converter.ConvertLines([]string{"Rope, Hempen (50 feet)"}, map[string]bool{"weight": true})

	s.Require().Len(result.Cards, 1)
	s.Equal([]string{
		"subtitle | Gear",
		"rule",
		"property | Value | 1 gp",
		"rule",
	}, result.Cards[0].Contents)
}

func (s *ConverterSuite) TestEmptyInput() {
	result := s.converter.Convert(nil, nil)

	s.NotNil(result.Cards)
	s.NotNil(result.Missing)
	s.Empty(result.Cards)
	s.Empty(result.Missing)
	s.Zero(result.Stats.Requested)
}

func (s *ConverterSuite) TestConvertEntries() {
	result := s.converter.Convert([]filterlist.Entry{
		{Name: "Potion of Healing", Count: 5, Line: 10},
	}, nil)

	s.Require().Len(result.Cards, 1)
	s.Equal(5, result.Cards[0].Count)
}

func TestConverterSuite(t *testing.T) {
	suite.Run(t, new(ConverterSuite))
}

// stubCatalog and stubRenderer check the converter against its interfaces
// only.
type stubCatalog map[string]*types.Item

func (c stubCatalog) Get(name string) (*types.Item, bool) {
	item, ok := c[name]
	return item, ok
}

type stubRenderer struct {
	excluded []map[string]bool
}

func (r *stubRenderer) Render(item *types.Item, excluded map[string]bool) types.Card {
	r.excluded = append(r.excluded, excluded)
	return types.Card{Title: item.Name, Count: 1}
}

func TestConvert_PassesExclusionsToRenderer(t *testing.T) {
	r := &stubRenderer{}
	c := New(stubCatalog{"x": {Name: "X"}}, r, WithLogger(nil))

	excluded := map[string]bool{"weight": true}
	result := c.ConvertLines([]string{"x", "2 x"}, excluded)

	require.Len(t, result.Cards, 2)
	assert.Equal(t, 2, result.Cards[1].Count)
	require.Len(t, r.excluded, 2)
	for _, got := range r.excluded {
		assert.True(t, got["weight"])
	}
}
