package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/metrics"
	"github.com/MKhiriev/go-blog/internal/mock"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/models"
	"go.uber.org/mock/gomock"
)

const testToken = "signed-token"

var (
	testCaller = models.Claims{UserID: "0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5b"}
	testAdmin  = models.Claims{UserID: "0190a1b2-c3d4-7e5f-8a9b-aaaaaaaaaaaa", IsAdmin: true}
)

// testServices bundles the service mocks behind a router built by newTestRouter.
type testServices struct {
	auth     *mock.MockAuthService
	users    *mock.MockUserService
	posts    *mock.MockPostService
	comments *mock.MockCommentService
	appInfo  *mock.MockAppInfoService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	ctrl := gomock.NewController(t)
	return &testServices{
		auth:     mock.NewMockAuthService(ctrl),
		users:    mock.NewMockUserService(ctrl),
		posts:    mock.NewMockPostService(ctrl),
		comments: mock.NewMockCommentService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}
}

func (s *testServices) services() *service.Services {
	return &service.Services{
		AuthService:    s.auth,
		UserService:    s.users,
		PostService:    s.posts,
		CommentService: s.comments,
		AppInfoService: s.appInfo,
	}
}

func newTestHandler(t *testing.T, cfg config.StructuredConfig) (*Handler, *testServices) {
	t.Helper()
	svcs := newTestServices(t)
	return NewHandler(svcs.services(), cfg, metrics.NewHTTPMetrics(), logger.Nop()), svcs
}

func newTestRouter(t *testing.T) (http.Handler, *testServices) {
	t.Helper()
	h, svcs := newTestHandler(t, config.StructuredConfig{})
	return h.Init(), svcs
}

// expectSession makes the auth middleware accept testToken as caller.
func (s *testServices) expectSession(caller models.Claims) {
	s.auth.EXPECT().ParseToken(gomock.Any(), testToken).Return(caller, nil)
}
