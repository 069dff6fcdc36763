// Package canvas is a read-only client for the parts of the Canvas LMS REST
// API used by the importer.
package canvas

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/tomnomnom/linkheader"

	"github.com/realprogrammersusevim/canvas-todo/internal/core/assignment"
)

const (
	apiPrefix = "/api/v1"
	perPage   = "100"

	// maxErrorBody caps how much of an error response is kept in the error.
	maxErrorBody = 200
)

// ErrUnauthorized is returned when Canvas rejects the access token.
var ErrUnauthorized = errors.New("canvas rejected the access token")

// Client talks to a single Canvas instance on behalf of the token's owner.
type Client struct {
	http *resty.Client
}

// New creates a client for the Canvas instance at baseURL authenticated with
// token. Requests have no client-side timeout; cancel ctx to abort.
func New(baseURL, token string) *Client {
	r := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")+apiPrefix).
		SetAuthToken(token).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "canvas-todo")

	return &Client{http: r}
}

// User is the authenticated Canvas user.
type User struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type course struct {
	ID   int64   `json:"id"`
	Name *string `json:"name"`
}

type assignmentJSON struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	DueAt       *string `json:"due_at"`
	Description *string `json:"description"`
	HTMLURL     string  `json:"html_url"`
}

// CurrentUser returns the owner of the access token.
func (c *Client) CurrentUser(ctx context.Context) (User, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/users/self")
	if err != nil {
		return User{}, fmt.Errorf("get current user: %w", err)
	}
	if err := checkResponse(resp); err != nil {
		return User{}, fmt.Errorf("get current user: %w", err)
	}

	var u User
	if err := json.Unmarshal(resp.Body(), &u); err != nil {
		return User{}, fmt.Errorf("decode current user: %w", err)
	}
	return u, nil
}

// Courses returns the user's favorite courses. Canvas answers with all
// active enrollments when the user has not marked any favorites. Courses the
// user may not access come back without a name.
func (c *Client) Courses(ctx context.Context) ([]assignment.Course, error) {
	raw, err := getAll[course](ctx, c.http, "/users/self/favorites/courses", nil)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}

	out := make([]assignment.Course, 0, len(raw))
	for _, rc := range raw {
		co := assignment.Course{ID: strconv.FormatInt(rc.ID, 10)}
		if rc.Name != nil {
			co.Name = *rc.Name
		}
		out = append(out, co)
	}
	return out, nil
}

// UpcomingAssignments returns the course's assignments in the "upcoming"
// bucket: due in the future or undated.
func (c *Client) UpcomingAssignments(ctx context.Context, co assignment.Course) ([]assignment.Record, error) {
	path := "/courses/" + co.ID + "/assignments"
	raw, err := getAll[assignmentJSON](ctx, c.http, path, map[string]string{"bucket": "upcoming"})
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}

	out := make([]assignment.Record, 0, len(raw))
	for _, a := range raw {
		out = append(out, assignment.Record{
			ID:          strconv.FormatInt(a.ID, 10),
			CourseName:  co.Name,
			Title:       a.Name,
			DueAt:       deref(a.DueAt),
			Description: deref(a.Description),
			HTMLURL:     a.HTMLURL,
		})
	}
	return out, nil
}

// getAll fetches path and every following page named by the Link header.
func getAll[T any](ctx context.Context, rc *resty.Client, path string, query map[string]string) ([]T, error) {
	req := rc.R().SetContext(ctx).SetQueryParam("per_page", perPage)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Get(path)

	var out []T
	for {
		if err != nil {
			return nil, err
		}
		if err := checkResponse(resp); err != nil {
			return nil, err
		}

		var page []T
		if err := json.Unmarshal(resp.Body(), &page); err != nil {
			return nil, fmt.Errorf("decode %s: %w", resp.Request.URL, err)
		}
		out = append(out, page...)

		next := nextPage(resp.Header().Get("Link"))
		if next == "" {
			return out, nil
		}

		// next is absolute and already carries the query
		resp, err = rc.R().SetContext(ctx).Get(next)
	}
}

func nextPage(header string) string {
	if header == "" {
		return ""
	}
	for _, link := range linkheader.Parse(header).FilterByRel("next") {
		if link.URL != "" {
			return link.URL
		}
	}
	return ""
}

func checkResponse(resp *resty.Response) error {
	if !resp.IsError() {
		return nil
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	body := strings.TrimSpace(resp.String())
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	return fmt.Errorf("%s %s: status %d: %s", resp.Request.Method, resp.Request.URL, resp.StatusCode(), body)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
