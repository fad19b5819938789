package httptransport

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"msalsa/internal/annotate"
	"msalsa/internal/phylo"
	phylomocks "msalsa/internal/phylo/mocks"
	"msalsa/internal/platform/config"
	"msalsa/internal/session"
	sessionmocks "msalsa/internal/session/mocks"
	"msalsa/internal/validation"
	"msalsa/internal/widget"
	id "msalsa/pkg/domain"
	"msalsa/pkg/platform/sentinel"
	"msalsa/pkg/requestcontext"
	"msalsa/pkg/testutil"
)

var treeDefaults = config.TreeDefaults{DivID: "svgCanvas", SVGHeight: 600, SVGWidth: 800}

type HandlerSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	store     *sessionmocks.MockStore
	logger    *slog.Logger
	sessionID id.SessionID
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = sessionmocks.NewMockStore(s.ctrl)
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	s.sessionID = id.NewSessionID()
}

func (s *HandlerSuite) withSession(req *http.Request) *http.Request {
	ctx := requestcontext.WithSessionID(req.Context(), s.sessionID)
	ctx = requestcontext.WithTime(ctx, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	return req.WithContext(ctx)
}

func (s *HandlerSuite) TestValidate() {
	h := NewSequenceHandler(validation.New(), s.logger, nil)

	s.Run("valid record", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/sequences/validate",
			ValidateSequencesRequest{Sequences: ">seq1\nACD\n"})
		rr := testutil.DoRequest(http.HandlerFunc(h.handleValidate), req)

		testutil.AssertStatusOK(s.T(), rr)
		resp := testutil.UnmarshalResponse[ValidateSequencesResponse](s.T(), rr)
		s.True(resp.Valid)
		s.Empty(resp.ReportHTML)
		s.Empty(resp.Errors)
	})

	s.Run("invalid residue", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/sequences/validate",
			ValidateSequencesRequest{Sequences: ">seq1\nACX\n"})
		rr := testutil.DoRequest(http.HandlerFunc(h.handleValidate), req)

		testutil.AssertStatusOK(s.T(), rr)
		resp := testutil.UnmarshalResponse[ValidateSequencesResponse](s.T(), rr)
		s.False(resp.Valid)
		s.False(resp.MissingMarker)
		s.Require().Len(resp.Errors, 1)
		s.Equal(SequenceError{
			Character: "X",
			Sequence:  "seq1",
			Line:      2,
			Message:   "Invalid character 'X' in sequence 'seq1' at line 2",
		}, resp.Errors[0])
		s.True(strings.HasPrefix(resp.ReportHTML, "The errors are:"))
		s.Contains(resp.ReportHTML, `<strong class="bg-info">X</strong>`)
	})

	s.Run("missing header", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/sequences/validate",
			ValidateSequencesRequest{Sequences: "ACD"})
		rr := testutil.DoRequest(http.HandlerFunc(h.handleValidate), req)

		resp := testutil.UnmarshalResponse[ValidateSequencesResponse](s.T(), rr)
		s.False(resp.Valid)
		s.True(resp.MissingMarker)
		s.Contains(resp.ReportHTML, "Missing &gt; at description beginning.")
	})

	s.Run("blank input is not reported", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/sequences/validate",
			ValidateSequencesRequest{Sequences: "  \n "})
		rr := testutil.DoRequest(http.HandlerFunc(h.handleValidate), req)

		resp := testutil.UnmarshalResponse[ValidateSequencesResponse](s.T(), rr)
		s.True(resp.Valid)
		s.Empty(resp.ReportHTML)
	})

	s.Run("malformed JSON", func() {
		req := testutil.NewRequestWithBody(s.T(), http.MethodPost, "/api/sequences/validate", `{"sequences":`)
		rr := testutil.DoRequest(http.HandlerFunc(h.handleValidate), req)

		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "bad_request")
	})
}

func (s *HandlerSuite) TestToggleFirstUseCreatesState() {
	h := NewColorHandler(s.store, s.logger, nil)

	s.store.EXPECT().Find(gomock.Any(), s.sessionID).Return(nil, sentinel.ErrNotFound)
	s.store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, state *session.ColorState) error {
		s.Equal(s.sessionID, state.ID)
		s.True(state.Annotator.Applied)
		s.Equal("AD", state.Annotator.Original)
		return nil
	})

	req := s.withSession(testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/alignment/colors/toggle",
		ToggleColorsRequest{Content: "AD"}))
	rr := testutil.DoRequest(http.HandlerFunc(h.handleToggle), req)

	testutil.AssertStatusOK(s.T(), rr)
	resp := testutil.UnmarshalResponse[ToggleColorsResponse](s.T(), rr)
	s.Equal(`<span class="nonPolar">A</span><span class="acidicPolar">D</span>`, resp.Content)
	s.Equal(annotate.LabelRemoveColors, resp.ButtonLabel)
	s.True(resp.ColorsApplied)
}

func (s *HandlerSuite) TestToggleRestoresOriginal() {
	h := NewColorHandler(s.store, s.logger, nil)

	stored := session.NewColorState(s.sessionID, time.Now())
	stored.Annotator = annotate.State{
		Original: "AD",
		Colored:  `<span class="nonPolar">A</span><span class="acidicPolar">D</span>`,
		Captured: true,
		Applied:  true,
	}
	s.store.EXPECT().Find(gomock.Any(), s.sessionID).Return(stored, nil)
	s.store.EXPECT().Save(gomock.Any(), stored).Return(nil)

	req := s.withSession(testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/alignment/colors/toggle",
		ToggleColorsRequest{Content: stored.Annotator.Colored}))
	rr := testutil.DoRequest(http.HandlerFunc(h.handleToggle), req)

	resp := testutil.UnmarshalResponse[ToggleColorsResponse](s.T(), rr)
	s.Equal("AD", resp.Content)
	s.Equal(annotate.LabelShowColors, resp.ButtonLabel)
	s.False(resp.ColorsApplied)
}

func (s *HandlerSuite) TestToggleStoreFailures() {
	h := NewColorHandler(s.store, s.logger, nil)
	storeErr := errors.Join(sentinel.ErrUnavailable, errors.New("connection refused"))

	s.Run("find", func() {
		s.store.EXPECT().Find(gomock.Any(), s.sessionID).Return(nil, storeErr)
		req := s.withSession(testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/alignment/colors/toggle",
			ToggleColorsRequest{Content: "AD"}))
		rr := testutil.DoRequest(http.HandlerFunc(h.handleToggle), req)

		testutil.AssertStatusAndError(s.T(), rr, http.StatusInternalServerError, "internal_error")
	})

	s.Run("save", func() {
		s.store.EXPECT().Find(gomock.Any(), s.sessionID).Return(nil, sentinel.ErrNotFound)
		s.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(storeErr)
		req := s.withSession(testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/alignment/colors/toggle",
			ToggleColorsRequest{Content: "AD"}))
		rr := testutil.DoRequest(http.HandlerFunc(h.handleToggle), req)

		testutil.AssertStatusAndError(s.T(), rr, http.StatusInternalServerError, "internal_error")
	})
}

func (s *HandlerSuite) TestToggleWithoutSession() {
	h := NewColorHandler(s.store, s.logger, nil)
	req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/alignment/colors/toggle",
		ToggleColorsRequest{Content: "AD"})
	rr := testutil.DoRequest(http.HandlerFunc(h.handleToggle), req)

	testutil.AssertStatusAndError(s.T(), rr, http.StatusInternalServerError, "internal_error")
}

func (s *HandlerSuite) TestRenderTree() {
	s.Run("fills defaults", func() {
		h := NewTreeHandler(treeDefaults, s.logger, nil)
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/tree/render",
			RenderTreeRequest{Newick: "(A:0.1,B:0.2);"})
		rr := testutil.DoRequest(http.HandlerFunc(h.handleRender), req)

		testutil.AssertStatusOK(s.T(), rr)
		s.Equal("text/html; charset=utf-8", rr.Header().Get("Content-Type"))
		body := rr.Body.String()
		s.Contains(body, `<div id="svgCanvas"></div>`)
		s.Contains(body, "600")
		s.Contains(body, "800")
	})

	s.Run("passes state through to the canvas", func() {
		canvas := phylomocks.NewMockCanvas(s.ctrl)
		canvas.EXPECT().Draw(phylo.State{NewickTree: "(A,B);", DivID: "tree", SVGHeight: 100, SVGWidth: 200}).Return(nil)

		h := NewTreeHandler(treeDefaults, s.logger, nil)
		h.newCanvas = func(widget.Element) phylo.Canvas { return canvas }
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/tree/render",
			RenderTreeRequest{Newick: "(A,B);", DivID: "tree", Height: 100, Width: 200})
		rr := testutil.DoRequest(http.HandlerFunc(h.handleRender), req)

		testutil.AssertStatusOK(s.T(), rr)
	})

	s.Run("canvas error", func() {
		canvas := phylomocks.NewMockCanvas(s.ctrl)
		canvas.EXPECT().Draw(gomock.Any()).Return(errors.New("canvas unavailable"))

		h := NewTreeHandler(treeDefaults, s.logger, nil)
		h.newCanvas = func(widget.Element) phylo.Canvas { return canvas }
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/tree/render",
			RenderTreeRequest{Newick: "(A,B);"})
		rr := testutil.DoRequest(http.HandlerFunc(h.handleRender), req)

		testutil.AssertStatusAndError(s.T(), rr, http.StatusInternalServerError, "internal_error")
	})
}

func (s *HandlerSuite) expectReset() {
	s.store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, state *session.ColorState) error {
		s.Equal(s.sessionID, state.ID)
		s.Equal(annotate.State{}, state.Annotator)
		return nil
	})
}

func (s *HandlerSuite) TestIndexPage() {
	defaults := treeDefaults
	defaults.ScriptURLs = []string{"/js/jsphylosvg-min.js"}
	h := NewPageHandler(s.store, defaults, s.logger)

	s.Run("renders the page and resets the color state", func() {
		s.expectReset()
		rr := testutil.DoRequest(http.HandlerFunc(h.handleIndex),
			s.withSession(testutil.NewRequest(s.T(), http.MethodGet, "/")))

		testutil.AssertStatusOK(s.T(), rr)
		body := rr.Body.String()
		s.Contains(body, `id="sequences"`)
		s.Contains(body, `id="errorPanel"`)
		s.Contains(body, `<div id="alignment"></div>`)
		s.Contains(body, `<form id="alignmentForm" method="post" action="/">`)
		s.Contains(body, `sequences.addEventListener("input"`)
		s.NotContains(body, `addEventListener("change"`)
		s.Contains(body, annotate.LabelShowColors)
		s.Contains(body, `data-div-id="svgCanvas"`)
		s.Contains(body, `src="/js/jsphylosvg-min.js"`)
	})

	s.Run("missing session", func() {
		rr := testutil.DoRequest(http.HandlerFunc(h.handleIndex), testutil.NewRequest(s.T(), http.MethodGet, "/"))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusInternalServerError, "internal_error")
	})

	s.Run("reset failure", func() {
		s.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
		rr := testutil.DoRequest(http.HandlerFunc(h.handleIndex),
			s.withSession(testutil.NewRequest(s.T(), http.MethodGet, "/")))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusInternalServerError, "internal_error")
	})
}

func (s *HandlerSuite) TestLoadAlignment() {
	h := NewPageHandler(s.store, treeDefaults, s.logger)

	s.Run("populates the alignment block", func() {
		s.expectReset()
		form := url.Values{"alignment": {"KR<b>"}}
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rr := testutil.DoRequest(http.HandlerFunc(h.handleLoadAlignment), s.withSession(req))

		testutil.AssertStatusOK(s.T(), rr)
		body := rr.Body.String()
		s.Contains(body, `<div id="alignment">KR&lt;b&gt;</div>`)
		s.Contains(body, annotate.LabelShowColors)
	})

	s.Run("malformed form", func() {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("alignment=%zz"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rr := testutil.DoRequest(http.HandlerFunc(h.handleLoadAlignment), s.withSession(req))

		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "bad_request")
	})
}

type healthFunc func(ctx context.Context) error

func (f healthFunc) Health(ctx context.Context) error { return f(ctx) }

func (s *HandlerSuite) TestHealth() {
	s.Run("memory sessions", func() {
		h := NewHealthHandler(nil, s.logger)
		rr := testutil.DoRequest(http.HandlerFunc(h.handleHealth), testutil.NewRequest(s.T(), http.MethodGet, "/health"))
		testutil.AssertStatusOK(s.T(), rr)
		testutil.AssertJSONContains(s.T(), rr, "status", "ok")
	})

	s.Run("redis down", func() {
		h := NewHealthHandler(healthFunc(func(context.Context) error { return errors.New("down") }), s.logger)
		rr := testutil.DoRequest(http.HandlerFunc(h.handleHealth), testutil.NewRequest(s.T(), http.MethodGet, "/health"))
		testutil.AssertStatus(s.T(), rr, http.StatusServiceUnavailable)
		testutil.AssertJSONContains(s.T(), rr, "redis", "unavailable")
	})
}
