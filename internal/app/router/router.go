package router

import (
	authhandler "vidshare_backend/internal/feature/auth/transport/handler"
	enghandler "vidshare_backend/internal/feature/engagement/transport/handler"
	insightshandler "vidshare_backend/internal/feature/insights/transport/handler"
	videohandler "vidshare_backend/internal/feature/videos/transport/handler"
	platformhandler "vidshare_backend/internal/platform/http/handler"
	jwtmw "vidshare_backend/internal/platform/jwt"
	"vidshare_backend/internal/platform/sessionmw"

	"github.com/gin-gonic/gin"
)

// NewRouter wires the full route table. Route classes and their auth gates:
//
//   - open routes: health, register/login, public feed, raw content bytes
//   - optional-session: the watch page (privacy decided per video)
//   - required-session, API class: likes and comments (401 JSON on failure)
//   - required-session, page class: upload, logout (redirect on failure)
//   - bearer JWT: the programmatic /v1 insights endpoints
func NewRouter(resolver sessionmw.Resolver,
	auth *authhandler.AuthHandler,
	videos *videohandler.VideoHandler,
	engagement *enghandler.EngagementHandler,
	insights *insightshandler.InsightsHandler) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", platformhandler.Health)
	// 新規ユーザー登録（セッション発行）
	r.POST("/register", auth.Register)
	// ログイン（セッション発行）
	r.POST("/login", auth.Login)
	// 公開フィード
	r.GET("/", videos.Feed)
	// コンテンツ配信（生バイト列）
	r.GET("/video_file/:name", videos.ServeContent)
	r.GET("/thumbnail/:name", videos.ServeContent)

	// 視聴ページ: セッションは任意、アクセス制御は動画単位で判定
	watch := r.Group("/")
	watch.Use(sessionmw.Optional(resolver))
	{
		watch.GET("/video/:id", videos.Watch)
	}

	// 認証必須のAPIルート（失敗時は401 JSON）
	apiRoutes := r.Group("/")
	apiRoutes.Use(sessionmw.RequireAPI(resolver))
	{
		apiRoutes.POST("/like/:id", engagement.ToggleLike)
		apiRoutes.POST("/comment/:id", engagement.AddComment)
	}

	// 認証必須のページルート（失敗時はログイン画面へリダイレクト）
	pageRoutes := r.Group("/")
	pageRoutes.Use(sessionmw.RequirePage(resolver))
	{
		pageRoutes.POST("/upload", videos.Upload)
		pageRoutes.POST("/logout", auth.Logout)
	}

	// プログラム向けAPI（Bearer JWT必須）
	// クラウドクレデンシャル未設定時はハンドラーが渡されず、ルート自体を登録しない
	if insights != nil {
		v1 := r.Group("/v1")
		v1.Use(jwtmw.AuthRequired())
		{
			v1.POST("/insights/thumbnail", insights.AnalyzeThumbnail)
			v1.POST("/insights/title", insights.SuggestTitle)
		}
	}

	return r
}
