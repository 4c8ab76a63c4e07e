package source_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/okian/versus/internal/adapters/source"
	. "github.com/smartystreets/goconvey/convey"
)

func TestClientPage(t *testing.T) {
	ctx := context.Background()

	Convey("Given the ended-events source client", t, func() {
		Convey("When the upstream responds successfully", func(cv C) {
			var gotQuery map[string]string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				cv.So(r.URL.Path, ShouldEqual, "/v1/events/ended")
				gotQuery = map[string]string{
					"sport_id": r.URL.Query().Get("sport_id"),
					"team_id":  r.URL.Query().Get("team_id"),
					"token":    r.URL.Query().Get("token"),
					"page":     r.URL.Query().Get("page"),
				}
				_ = json.NewEncoder(w).Encode(map[string]any{
					"success": 1,
					"results": []map[string]any{
						{
							"id":          "77",
							"home":        map[string]string{"id": "337281", "name": "Los Angeles Lakers"},
							"away":        map[string]string{"id": "337269", "name": "Boston Celtics"},
							"time_status": "3",
							"ss":          "110-102",
						},
					},
				})
			}))
			defer srv.Close()

			c := source.NewClient(
				source.WithBaseURL(srv.URL),
				source.WithToken("secret"),
				source.WithSportID("18"),
			)
			games, err := c.Page(ctx, "337281", 2)

			Convey("Then the page decodes and the query carries all params", func() {
				So(err, ShouldBeNil)
				So(len(games), ShouldEqual, 1)
				So(games[0].Home.ID, ShouldEqual, "337281")
				So(games[0].Score, ShouldEqual, "110-102")
				So(gotQuery["sport_id"], ShouldEqual, "18")
				So(gotQuery["team_id"], ShouldEqual, "337281")
				So(gotQuery["token"], ShouldEqual, "secret")
				So(gotQuery["page"], ShouldEqual, "2")
			})
		})

		Convey("When the upstream returns an empty page", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_ = json.NewEncoder(w).Encode(map[string]any{"success": 1, "results": []any{}})
			}))
			defer srv.Close()

			games, err := source.NewClient(source.WithBaseURL(srv.URL)).Page(ctx, "1", 99)
			So(err, ShouldBeNil)
			So(games, ShouldBeEmpty)
		})

		Convey("When the upstream returns a non-2xx status", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			}))
			defer srv.Close()

			_, err := source.NewClient(source.WithBaseURL(srv.URL)).Page(ctx, "1", 1)
			So(errors.Is(err, source.ErrStatus), ShouldBeTrue)
		})

		Convey("When the upstream reports failure in the envelope", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_ = json.NewEncoder(w).Encode(map[string]any{"success": 0})
			}))
			defer srv.Close()

			_, err := source.NewClient(source.WithBaseURL(srv.URL)).Page(ctx, "1", 1)
			So(err, ShouldNotBeNil)
		})

		Convey("When the payload is not valid JSON", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("<html>maintenance</html>"))
			}))
			defer srv.Close()

			_, err := source.NewClient(source.WithBaseURL(srv.URL)).Page(ctx, "1", 1)
			So(err, ShouldNotBeNil)
		})

		Convey("When the upstream is unreachable", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
			srv.Close() // closed before use

			_, err := source.NewClient(source.WithBaseURL(srv.URL)).Page(ctx, "1", 1)
			So(err, ShouldNotBeNil)
		})
	})
}
