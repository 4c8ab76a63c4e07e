package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/okian/versus/internal/adapters/http/api"
	service "github.com/okian/versus/internal/app"
	"github.com/okian/versus/internal/domain/roster"
	"github.com/okian/versus/internal/domain/stats"
	"github.com/okian/versus/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

// stubDeps implements api.Dependencies and api.StatsProvider with
// canned responses.
type stubDeps struct {
	report  types.Report
	err     error
	lastReq struct {
		name1, name2 string
		count        int
	}
}

func (s *stubDeps) Compare(_ context.Context, name1, name2 string, count int) (types.Report, error) {
	s.lastReq.name1, s.lastReq.name2, s.lastReq.count = name1, name2, count
	return s.report, s.err
}

func (s *stubDeps) Competitors(_ context.Context) []roster.Competitor {
	return []roster.Competitor{{ID: "1", Name: "Boston Celtics"}}
}

func (s *stubDeps) DefaultGameCount() int { return 10 }
func (s *stubDeps) MaxGameCount() int     { return 50 }

func (s *stubDeps) GetStats() map[string]interface{} {
	return map[string]interface{}{"started": true}
}

func newTestServer(deps *stubDeps) *httptest.Server {
	mux := http.NewServeMux()
	api.NewServer(deps, deps).Register(context.Background(), mux)
	return httptest.NewServer(mux)
}

func TestH2HEndpoint(t *testing.T) {
	Convey("Given the /h2h endpoint", t, func() {
		deps := &stubDeps{report: types.Report{
			Player1:    types.CompetitorRef{ID: "1", Name: "Boston Celtics"},
			Player2:    types.CompetitorRef{ID: "2", Name: "Miami Heat"},
			GamesFound: 3,
			Outcome:    "exhausted",
			Record:     stats.Summary{WinsP1: 2, WinsP2: 1},
		}}
		srv := newTestServer(deps)
		defer srv.Close()

		Convey("When both names and a count are supplied", func() {
			resp, err := http.Get(srv.URL + "/h2h?p1=celtics&p2=heat&count=3")
			So(err, ShouldBeNil)
			defer func() { _ = resp.Body.Close() }()

			Convey("Then the report comes back as JSON", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				So(resp.Header.Get("X-Request-Id"), ShouldNotBeEmpty)

				var report types.Report
				So(json.NewDecoder(resp.Body).Decode(&report), ShouldBeNil)
				So(report.Player2.Name, ShouldEqual, "Miami Heat")
				So(report.Record.WinsP1, ShouldEqual, 2)
				So(deps.lastReq.count, ShouldEqual, 3)
			})
		})

		Convey("When the count is omitted", func() {
			resp, err := http.Get(srv.URL + "/h2h?p1=celtics&p2=heat")
			So(err, ShouldBeNil)
			_ = resp.Body.Close()

			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(deps.lastReq.count, ShouldEqual, 10)
		})

		Convey("When a name is missing", func() {
			resp, err := http.Get(srv.URL + "/h2h?p1=celtics")
			So(err, ShouldBeNil)
			_ = resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the count is not a positive integer", func() {
			for _, count := range []string{"abc", "0", "-4"} {
				resp, err := http.Get(srv.URL + "/h2h?p1=a&p2=b&count=" + count)
				So(err, ShouldBeNil)
				_ = resp.Body.Close()
				So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
			}
		})

		Convey("When the count exceeds the maximum", func() {
			resp, err := http.Get(srv.URL + "/h2h?p1=a&p2=b&count=51")
			So(err, ShouldBeNil)
			_ = resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the competitor is unknown", func() {
			deps.err = fmt.Errorf("%w: %q", service.ErrUnknownCompetitor, "isotopes")
			resp, err := http.Get(srv.URL + "/h2h?p1=isotopes&p2=heat")
			So(err, ShouldBeNil)
			_ = resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
		})

		Convey("When both names resolve identically", func() {
			deps.err = fmt.Errorf("%w: %q and %q", service.ErrSameCompetitor, "heat", "miami heat")
			resp, err := http.Get(srv.URL + "/h2h?p1=heat&p2=miami+heat")
			So(err, ShouldBeNil)
			_ = resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the method is not GET", func() {
			resp, err := http.Post(srv.URL+"/h2h?p1=a&p2=b", "application/json", nil)
			So(err, ShouldBeNil)
			_ = resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestSupportingEndpoints(t *testing.T) {
	Convey("Given the supporting endpoints", t, func() {
		srv := newTestServer(&stubDeps{})
		defer srv.Close()

		Convey("When hitting /competitors", func() {
			resp, err := http.Get(srv.URL + "/competitors")
			So(err, ShouldBeNil)
			defer func() { _ = resp.Body.Close() }()

			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			var list []roster.Competitor
			So(json.NewDecoder(resp.Body).Decode(&list), ShouldBeNil)
			So(len(list), ShouldEqual, 1)
		})

		Convey("When hitting /healthz", func() {
			resp, err := http.Get(srv.URL + "/healthz")
			So(err, ShouldBeNil)
			_ = resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
		})

		Convey("When hitting /stats", func() {
			resp, err := http.Get(srv.URL + "/stats")
			So(err, ShouldBeNil)
			defer func() { _ = resp.Body.Close() }()

			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			var stats map[string]interface{}
			So(json.NewDecoder(resp.Body).Decode(&stats), ShouldBeNil)
			So(stats["started"], ShouldEqual, true)
		})

		Convey("When hitting /metrics", func() {
			resp, err := http.Get(srv.URL + "/metrics")
			So(err, ShouldBeNil)
			_ = resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
		})
	})
}
