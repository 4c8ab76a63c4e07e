package roster_test

import (
	"sort"
	"testing"

	"github.com/okian/versus/internal/domain/roster"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRoster(t *testing.T) {
	Convey("Given a roster with aliases", t, func() {
		r := roster.New([]roster.Entry{
			{ID: "10", Name: "Boston Celtics", Aliases: []string{"celtics"}},
			{ID: "11", Name: "Los Angeles Lakers", Aliases: []string{"lakers", "la lakers"}},
		})

		Convey("When resolving by canonical name", func() {
			c, ok := r.Resolve("Boston Celtics")
			So(ok, ShouldBeTrue)
			So(c.ID, ShouldEqual, "10")
		})

		Convey("When resolving case-insensitively with stray whitespace", func() {
			c, ok := r.Resolve("  bOsToN cElTiCs ")
			So(ok, ShouldBeTrue)
			So(c.ID, ShouldEqual, "10")
		})

		Convey("When resolving by alias", func() {
			c, ok := r.Resolve("LA Lakers")
			So(ok, ShouldBeTrue)
			So(c.Name, ShouldEqual, "Los Angeles Lakers")
		})

		Convey("When the name is unknown", func() {
			_, ok := r.Resolve("Springfield Isotopes")
			So(ok, ShouldBeFalse)
		})

		Convey("When listing", func() {
			list := r.List()
			So(len(list), ShouldEqual, 2)
			So(sort.SliceIsSorted(list, func(i, j int) bool {
				return list[i].Name < list[j].Name
			}), ShouldBeTrue)
			So(r.Size(), ShouldEqual, 2)
		})
	})
}

func TestNBARoster(t *testing.T) {
	Convey("Given the default NBA roster", t, func() {
		r := roster.NBA()

		Convey("Then all thirty franchises resolve with distinct ids", func() {
			So(r.Size(), ShouldEqual, 30)
			seen := make(map[string]bool)
			for _, c := range r.List() {
				So(seen[c.ID], ShouldBeFalse)
				seen[c.ID] = true
			}
		})

		Convey("And common short names resolve", func() {
			for _, alias := range []string{"lakers", "celtics", "okc", "sixers"} {
				_, ok := r.Resolve(alias)
				So(ok, ShouldBeTrue)
			}
		})
	})
}
