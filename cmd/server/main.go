package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"vidshare_backend/internal/app/di"
	"vidshare_backend/internal/app/router"
	authadapters "vidshare_backend/internal/feature/auth/adapters"
	authhandler "vidshare_backend/internal/feature/auth/transport/handler"
	authusecase "vidshare_backend/internal/feature/auth/usecase"
	engadapters "vidshare_backend/internal/feature/engagement/adapters"
	enghandler "vidshare_backend/internal/feature/engagement/transport/handler"
	engusecase "vidshare_backend/internal/feature/engagement/usecase"
	"vidshare_backend/internal/feature/insights/adapters/gemini"
	"vidshare_backend/internal/feature/insights/adapters/vision"
	insightshandler "vidshare_backend/internal/feature/insights/transport/handler"
	insightsusecase "vidshare_backend/internal/feature/insights/usecase"
	videoadapters "vidshare_backend/internal/feature/videos/adapters"
	videohandler "vidshare_backend/internal/feature/videos/transport/handler"
	videosusecase "vidshare_backend/internal/feature/videos/usecase"
	"vidshare_backend/internal/platform/cache"
	platformdb "vidshare_backend/internal/platform/db"
	jwtmw "vidshare_backend/internal/platform/jwt"
	platformredis "vidshare_backend/internal/platform/redis"
	"vidshare_backend/internal/shared/ratelimiter"
)

// apiTokenTTL is the lifetime of the signed API tokens handed out at login.
const apiTokenTTL = 24 * time.Hour

// feedCacheTTL bounds how stale the public feed may get.
const feedCacheTTL = time.Minute

func main() {
	ctx := context.Background()

	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	// db
	db := platformdb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// コンテンツストア（S3またはローカルディスク）
	contentStore, err := di.NewContentStore(ctx)
	if err != nil {
		log.Fatalf("[ERROR] Failed to initialize content store: %v", err)
	}

	// JWT_SECRETチェック（開発中の注意喚起）
	if os.Getenv(jwtmw.EnvKeyJWTSecret) == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	// Repository
	userRepo := authadapters.NewUserMySQL(db)
	sessionRepo := di.NewSessionRepository(rdb, db)
	videoRepo := videoadapters.NewVideoMySQL(db)
	likeRepo := engadapters.NewLikeMySQL(db)
	commentRepo := engadapters.NewCommentMySQL(db)

	// 公開フィードのみRedisキャッシュでラップ
	cachedVideoRepo := cache.NewCachingVideoRepository(rdb, feedCacheTTL, videoRepo, "feed")

	// Usecase
	jwtGen := jwtmw.NewGenerator(os.Getenv(jwtmw.EnvKeyJWTSecret), apiTokenTTL)
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo, jwtGen)
	videosUC := videosusecase.NewVideosUsecase(cachedVideoRepo, contentStore)
	engagementUC := engusecase.NewEngagementUsecase(likeRepo, commentRepo, videoRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	videosH := videohandler.NewVideoHandler(videosUC, engagementUC)
	engagementH := enghandler.NewEngagementHandler(engagementUC)
	insightsH := newInsightsHandler(ctx)

	// ルータ生成
	r := router.NewRouter(authUC, authH, videosH, engagementH, insightsH)

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}

// newInsightsHandler wires the Vision/Gemini backed endpoints. Both clients
// need cloud credentials; when either is unavailable the /v1 insights routes
// are simply not registered instead of failing startup.
func newInsightsHandler(ctx context.Context) *insightshandler.InsightsHandler {
	labeler, err := vision.NewVisionThumbnailLabeler(ctx)
	if err != nil {
		log.Println("[WARN] Vision client unavailable. Insights routes disabled:", err)
		return nil
	}
	suggester, err := gemini.NewGeminiSuggester(ctx)
	if err != nil {
		log.Println("[WARN] Gemini client unavailable. Insights routes disabled:", err)
		return nil
	}
	limiter := ratelimiter.NewRateLimiter(60, time.Minute)
	uc := insightsusecase.NewInsightsUsecase(labeler, suggester, limiter)
	return insightshandler.NewInsightsHandler(uc)
}
