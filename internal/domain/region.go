package domain

import (
	"fmt"
	"strings"
)

// Region is a platform server code ("NA1", "KR", ...). The upstream API
// expects the lowercase form on the wire.
type Region string

const (
	RegionNA1  Region = "NA1"
	RegionEUW1 Region = "EUW1"
	RegionEUN1 Region = "EUN1"
	RegionKR   Region = "KR"
	RegionBR1  Region = "BR1"
	RegionLA1  Region = "LA1"
	RegionLA2  Region = "LA2"
	RegionOC1  Region = "OC1"
	RegionTR1  Region = "TR1"
	RegionRU   Region = "RU"
	RegionJP1  Region = "JP1"
)

// RegionInfo pairs a region code with its display label.
type RegionInfo struct {
	Value Region `json:"value"`
	Label string `json:"label"`
}

var regionLabels = []RegionInfo{
	{RegionNA1, "North America"},
	{RegionEUW1, "Europe West"},
	{RegionEUN1, "Europe Nordic & East"},
	{RegionKR, "Korea"},
	{RegionBR1, "Brazil"},
	{RegionLA1, "Latin America North"},
	{RegionLA2, "Latin America South"},
	{RegionOC1, "Oceania"},
	{RegionTR1, "Turkey"},
	{RegionRU, "Russia"},
	{RegionJP1, "Japan"},
}

// Regions lists all supported regions in display order.
func Regions() []RegionInfo {
	out := make([]RegionInfo, len(regionLabels))
	copy(out, regionLabels)
	return out
}

// ParseRegion accepts a region code in any case.
func ParseRegion(s string) (Region, error) {
	r := Region(strings.ToUpper(strings.TrimSpace(s)))
	for _, info := range regionLabels {
		if info.Value == r {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown region %q", s)
}

// Wire returns the lowercase form used in upstream query strings.
func (r Region) Wire() string {
	return strings.ToLower(string(r))
}

func (r Region) String() string {
	return string(r)
}
