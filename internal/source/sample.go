package source

import (
	"context"

	"github.com/atomicstack/gridmenu/internal/grid"
)

var sampleHeader = []string{"athlete", "country", "sport", "year", "gold", "silver", "bronze"}

var sampleRecords = [][]string{
	{"Michael Phelps", "United States", "Swimming", "2008", "8", "0", "0"},
	{"Natalie Coughlin", "United States", "Swimming", "2008", "1", "2", "3"},
	{"Aleksey Nemov", "Russia", "Gymnastics", "2000", "2", "1", "3"},
	{"Alicia Coutts", "Australia", "Swimming", "2012", "1", "3", "1"},
	{"Missy Franklin", "United States", "Swimming", "2012", "4", "0", "1"},
	{"Ryan Lochte", "United States", "Swimming", "2012", "2", "2", "1"},
	{"Allison Schmitt", "United States", "Swimming", "2012", "3", "1", "1"},
	{"Usain Bolt", "Jamaica", "Athletics", "2008", "3", "0", "0"},
	{"Ian Thorpe", "Australia", "Swimming", "2000", "3", "2", "0"},
	{"Dara Torres", "United States", "Swimming", "2000", "2", "0", "3"},
	{"Cindy Klassen", "Canada", "Speed Skating", "2006", "1", "2", "2"},
	{"Nastia Liukin", "United States", "Gymnastics", "2008", "1", "3", "1"},
	{"Marit Bjørgen", "Norway", "Cross Country Skiing", "2010", "3", "1", "1"},
	{"Sun Yang", "China", "Swimming", "2012", "2", "1", "1"},
	{"Kirsty Coventry", "Zimbabwe", "Swimming", "2008", "1", "3", "0"},
}

type sampleSource struct{}

func (sampleSource) Kind() Kind   { return KindSample }
func (sampleSource) Path() string { return "" }

func (sampleSource) Fingerprint() (string, error) { return string(KindSample), nil }

func (sampleSource) Load(context.Context) (*grid.Table, error) {
	return grid.NewTable("medals", sampleHeader, sampleRecords), nil
}
