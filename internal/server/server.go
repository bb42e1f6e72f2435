package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	adminapp "github.com/sngm3741/resort-crew/api/internal/admin/application"
	"github.com/sngm3741/resort-crew/api/internal/config"
	mongodoc "github.com/sngm3741/resort-crew/api/internal/infrastructure/mongo"
	adminhttp "github.com/sngm3741/resort-crew/api/internal/interfaces/http/admin"
	commonhttp "github.com/sngm3741/resort-crew/api/internal/interfaces/http/common"
	publichttp "github.com/sngm3741/resort-crew/api/internal/interfaces/http/public"
	recruitinghttp "github.com/sngm3741/resort-crew/api/internal/interfaces/http/recruiting"
	"github.com/sngm3741/resort-crew/api/internal/notification"
	publicapp "github.com/sngm3741/resort-crew/api/internal/public/application"
	recruitingapp "github.com/sngm3741/resort-crew/api/internal/recruiting/application"
)

// Server は HTTP サーバーのライフサイクルを管理し、各コンテキストのハンドラへ依存注入するコンポジションルート。
type Server struct {
	logger         *log.Logger
	client         *mongo.Client
	jwtConfigs     []config.JWTConfig
	jwtAudience    string
	addr           string
	allowedOrigins []string

	listingQueries      publicapp.ListingQueryService
	applicationService  recruitingapp.ApplicationService
	notificationService recruitingapp.NotificationService
	moderationService   adminapp.ModerationService
	retryWorker         *notification.RetryWorker
}

type authenticatedUser = commonhttp.AuthenticatedUser

// Routes はミドルウェアと全コンテキストのルーティングを組み立てる。
func (s *Server) Routes() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(withCORS(s.allowedOrigins))

	router.Get("/healthz", s.healthHandler())

	publicHandler := publichttp.NewHandler(publichttp.Config{
		Logger:   s.logger,
		Listings: s.listingQueries,
	})
	publicHandler.Register(router, s.authMiddleware)

	recruitingHandler := recruitinghttp.NewHandler(recruitinghttp.Config{
		Logger:        s.logger,
		Applications:  s.applicationService,
		Notifications: s.notificationService,
	})
	recruitingHandler.Register(router, s.authMiddleware)

	adminHandler := adminhttp.NewHandler(adminhttp.Config{
		Logger:     s.logger,
		Moderation: s.moderationService,
	})
	router.Route("/admin", func(r chi.Router) {
		r.Use(s.authMiddleware)
		r.Use(commonhttp.RequireRole(commonhttp.RoleAdmin))
		adminHandler.Register(r)
	})

	return router
}

// Run はリトライワーカーと HTTP サーバーを起動し、シグナル受信まで待機する。
func (s *Server) Run(ctx context.Context) error {
	if s.retryWorker != nil {
		if err := s.retryWorker.Start(ctx); err != nil {
			return fmt.Errorf("start retry worker: %w", err)
		}
	}

	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Printf("HTTP サーバー起動: http://%s", s.addr)
		errChan <- httpServer.ListenAndServe()
	}()

	waitForShutdown(httpServer, errChan, s)
	return nil
}

// withCORS は許可されたオリジン情報をもとに CORS ヘッダーを付与するミドルウェアを返す。
func withCORS(origins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{})
	allowAll := false
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if origin == "*" {
			allowAll = true
			continue
		}
		allowed[origin] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := strings.TrimSpace(r.Header.Get("Origin"))
			if origin == "" || (!allowAll && len(allowed) > 0 && !originAllowed(origin, allowed)) {
				if r.Method == http.MethodOptions {
					w.WriteHeader(http.StatusNoContent)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PATCH,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization,Content-Type")
			w.Header().Set("Access-Control-Max-Age", "300")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// originAllowed は指定された Origin が許可リストに含まれるか判定する。
func originAllowed(origin string, allowed map[string]struct{}) bool {
	if len(allowed) == 0 {
		return true
	}
	_, ok := allowed[origin]
	return ok
}

// healthHandler は MongoDB への疎通確認を行い、監視系からのヘルスチェック要求に応える。
func (s *Server) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
			s.writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "degraded",
				"error":  err.Error(),
			})
			return
		}

		s.writeJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	}
}

// authMiddleware は Authorization ヘッダーから JWT を検証し、認証済みユーザーをコンテキストへ詰める。
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
		if authHeader == "" {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Authorization 헤더가 없습니다"})
			return
		}

		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Bearer 토큰을 지정해주세요"})
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
		if tokenString == "" {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "액세스 토큰이 비어 있습니다"})
			return
		}

		claims, err := s.parseAuthToken(tokenString)
		if err != nil {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
			return
		}

		user := authenticatedUser{
			ID:       claims.Subject,
			Name:     claims.Name,
			Username: claims.PreferredUsername,
			Picture:  claims.Picture,
			Role:     strings.ToLower(strings.TrimSpace(claims.Role)),
		}

		ctx := commonhttp.ContextWithUser(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// parseAuthToken は複数の JWT 設定を順番に試し、署名検証と Issuer/Audience の整合性を確認する。
func (s *Server) parseAuthToken(tokenString string) (*authClaims, error) {
	if len(s.jwtConfigs) == 0 {
		return nil, fmt.Errorf("인증 설정이 구성되지 않았습니다")
	}

	for _, cfg := range s.jwtConfigs {
		claims := &authClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
			if token.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("unexpected signing method: %s", token.Method.Alg())
			}
			return cfg.Secret, nil
		}, jwt.WithLeeway(30*time.Second))

		if err != nil || !token.Valid {
			continue
		}

		if cfg.Issuer != "" && claims.Issuer != cfg.Issuer {
			continue
		}
		if claims.Subject == "" {
			continue
		}
		if s.jwtAudience != "" && !contains(claims.Audience, s.jwtAudience) {
			continue
		}

		return claims, nil
	}

	return nil, fmt.Errorf("액세스 토큰이 유효하지 않습니다")
}

// contains は Audience 等の検証で利用する単純な包含チェック。
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

type authClaims struct {
	jwt.RegisteredClaims
	Name              string `json:"name,omitempty"`
	Picture           string `json:"picture,omitempty"`
	PreferredUsername string `json:"preferred_username,omitempty"`
	Role              string `json:"role,omitempty"`
}

// writeJSON は JSON レスポンスの共通書き込み処理。
func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Printf("JSON エンコードに失敗: %v", err)
	}
}

// shutdown はワーカーを止め、MongoDB クライアントをタイムアウト付きで切断する。
func (s *Server) shutdown(ctx context.Context) {
	if s.retryWorker != nil {
		s.retryWorker.Stop()
	}
	if s.client == nil {
		return
	}
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.client.Disconnect(shutdownCtx); err != nil {
		s.logger.Printf("MongoDB 切断時にエラー: %v", err)
	}
}

// waitForShutdown は ListenAndServe の終了と OS シグナルを監視し、graceful shutdown を実現する。
func waitForShutdown(httpServer *http.Server, errChan <-chan error, srv *Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			srv.logger.Fatalf("サーバーが異常終了: %v", err)
		}
	case sig := <-sigChan:
		srv.logger.Printf("シグナル %s を受信。サーバー停止処理を開始します。", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			srv.logger.Printf("サーバー停止時にエラー: %v", err)
		}
	}

	srv.shutdown(context.Background())
}

// New は Config と Mongo クライアントを受け取り、リポジトリ・アプリケーションサービス・
// 通知配送を組み立てた Server を返す。publisher が nil の場合イベントは破棄される。
func New(cfg config.Config, client *mongo.Client, publisher recruitingapp.EventPublisher) *Server {
	logger := cfg.ServerLog
	if logger == nil {
		logger = log.Default()
	}
	database := client.Database(cfg.MongoDatabase)

	postingRepo := mongodoc.NewPostingRepository(database, cfg.PostingCollection)
	employerRepo := mongodoc.NewEmployerProfileRepository(database, cfg.EmployerProfileCollection)
	lodgingRepo := mongodoc.NewLodgingProfileRepository(database, cfg.LodgingProfileCollection)
	reviewRepo := mongodoc.NewReviewRepository(database, cfg.ReviewCollection)
	applicationRepo := mongodoc.NewApplicationRepository(database, cfg.ApplicationCollection)
	notificationRepo := mongodoc.NewNotificationRepository(database, cfg.NotificationCollection)
	failedRepo := mongodoc.NewFailedNotificationRepository(database, cfg.FailedNotificationCollection)

	sender := notification.NewMessengerSender(cfg.MessengerEndpoint, &http.Client{Timeout: cfg.MessengerTimeout})
	dispatcher := notification.NewDispatcher(sender, notification.NewTemplateStore(), failedRepo, notification.DispatcherOptions{
		Destination: cfg.MessengerDestination,
		Attempts:    cfg.MessengerAttempts,
		Delay:       500 * time.Millisecond,
	}, logger)

	if publisher == nil {
		publisher = recruitingapp.NoopPublisher{}
	}

	return &Server{
		logger:         logger,
		client:         client,
		jwtConfigs:     append([]config.JWTConfig(nil), cfg.JWTConfigs...),
		jwtAudience:    cfg.JWTAudience,
		addr:           cfg.Addr,
		allowedOrigins: append([]string(nil), cfg.AllowedOrigins...),

		listingQueries: publicapp.NewListingQueryService(postingRepo, employerRepo, lodgingRepo, reviewRepo, publicapp.ListingOptions{
			LookupConcurrency: cfg.ListingLookupConcurrency,
			LookupTimeout:     cfg.ListingLookupTimeout,
		}, logger),
		applicationService: recruitingapp.NewApplicationService(recruitingapp.Dependencies{
			Applications:  applicationRepo,
			Postings:      postingRepo,
			Notifications: notificationRepo,
			Dispatcher:    dispatcher,
			Publisher:     publisher,
		}, logger),
		notificationService: recruitingapp.NewNotificationService(notificationRepo),
		moderationService:   adminapp.NewModerationService(postingRepo),
		retryWorker: notification.NewRetryWorker(
			cfg.NotificationRetrySpec,
			sender,
			failedRepo,
			cfg.NotificationMaxAttempts,
			cfg.NotificationRetryBatch,
			logger,
		),
	}
}
