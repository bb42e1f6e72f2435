package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	mongodoc "github.com/sngm3741/resort-crew/api/internal/infrastructure/mongo"
	publicdomain "github.com/sngm3741/resort-crew/api/internal/public/domain"
)

type seedOptions struct {
	envName         string
	employerCount   int
	postingCount    int
	reviewCount     int
	dropCollections bool
	randomSeed      int64
}

type regionCandidate struct {
	province  string
	districts []string
}

var regions = []regionCandidate{
	{"강원도", []string{"평창군", "정선군", "속초시", "홍천군"}},
	{"제주특별자치도", []string{"서귀포시", "제주시"}},
	{"경기도", []string{"가평군", "용인시", "이천시"}},
	{"전라북도", []string{"무주군", "남원시"}},
	{"경상북도", []string{"경주시", "울진군"}},
}

var resortNames = []string{"설원", "푸른바다", "한라", "솔숲", "은하수", "별빛", "단풍", "하늘정원"}
var resortKinds = []string{"리조트", "스키리조트", "호텔&리조트", "워터파크", "골프리조트"}
var jobTitles = []string{"프런트 데스크", "하우스키핑", "리프트 운영", "스키 강사", "레스토랑 서빙", "주방 보조", "라이프가드", "객실 관리"}

func main() {
	opts := parseFlags()
	loadEnvFiles(opts.envName)

	cols := mongodoc.Collections{
		Postings:            envOrDefault("POSTING_COLLECTION", "job_posts"),
		EmployerProfiles:    envOrDefault("EMPLOYER_PROFILE_COLLECTION", "employer_profiles"),
		LodgingProfiles:     envOrDefault("LODGING_PROFILE_COLLECTION", "lodging_profiles"),
		Reviews:             envOrDefault("REVIEW_COLLECTION", "reviews"),
		Applications:        envOrDefault("APPLICATION_COLLECTION", "applications"),
		Notifications:       envOrDefault("NOTIFICATION_COLLECTION", "notifications"),
		FailedNotifications: envOrDefault("FAILED_NOTIFICATION_COLLECTION", "failed_notifications"),
	}

	mongoURI := envOrDefault("MONGO_URI", "mongodb://localhost:27017")
	dbName := envOrDefault("MONGO_DB", "resort-crew")

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("MongoDB 接続に失敗しました: %v", err)
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	db := client.Database(dbName)

	if opts.dropCollections {
		dropCollections(ctx, db, cols)
		log.Printf("既存コレクションを削除しました")
	}

	if err := mongodoc.EnsureIndexes(ctx, db, cols); err != nil {
		log.Fatalf("インデックス作成に失敗しました: %v", err)
	}

	rng := rand.New(rand.NewSource(opts.randomSeed))
	now := time.Now().UTC()

	employers := mongodoc.NewEmployerProfileRepository(db, cols.EmployerProfiles)
	lodgings := mongodoc.NewLodgingProfileRepository(db, cols.LodgingProfiles)
	postings := mongodoc.NewPostingRepository(db, cols.Postings)
	reviews := mongodoc.NewReviewRepository(db, cols.Reviews)

	employerIDs := make([]string, 0, opts.employerCount)
	lodgingCount := 0
	for i := 0; i < opts.employerCount; i++ {
		profile, lodging := generateEmployer(rng, i)
		if err := employers.Upsert(ctx, profile); err != nil {
			log.Fatalf("雇用主プロフィールの登録に失敗しました: %v", err)
		}
		if lodging != nil {
			if err := lodgings.Upsert(ctx, *lodging); err != nil {
				log.Fatalf("寮情報の登録に失敗しました: %v", err)
			}
			lodgingCount++
		}
		employerIDs = append(employerIDs, profile.EmployerID)
	}

	visible := 0
	for i := 0; i < opts.postingCount; i++ {
		doc := generatePosting(rng, employerIDs, now)
		if _, err := postings.Insert(ctx, doc); err != nil {
			log.Fatalf("求人の登録に失敗しました: %v", err)
		}
		if postingVisible(doc) {
			visible++
		}
	}

	unrated := 0
	for i := 0; i < opts.reviewCount; i++ {
		doc := generateReview(rng, employerIDs, now)
		if doc.OverallRating == nil && doc.AccommodationRating == nil {
			unrated++
		}
		if err := reviews.Insert(ctx, doc); err != nil {
			log.Fatalf("レビューの登録に失敗しました: %v", err)
		}
	}

	log.Printf("Seed 完了: employers=%d lodgings=%d postings=%d (visible=%d) reviews=%d (unrated=%d)",
		len(employerIDs), lodgingCount, opts.postingCount, visible, opts.reviewCount, unrated)
	log.Printf("Mongo: %s / %s (env=%s)", mongoURI, dbName, opts.envName)
}

func parseFlags() seedOptions {
	var opts seedOptions
	flag.StringVar(&opts.envName, "env", "local", "env ディレクトリ内の env ファイル名 (例: local, staging)")
	flag.IntVar(&opts.employerCount, "employers", 8, "生成する雇用主数")
	flag.IntVar(&opts.postingCount, "postings", 40, "生成する求人数")
	flag.IntVar(&opts.reviewCount, "reviews", 60, "生成するレビュー数")
	flag.BoolVar(&opts.dropCollections, "drop", true, "既存コレクションを削除してから投入する")
	defaultSeed := time.Now().UnixNano()
	flag.Int64Var(&opts.randomSeed, "seed", defaultSeed, "乱数シード（再現用）")
	flag.Parse()

	if opts.employerCount <= 0 {
		log.Fatal("employers は 1 以上を指定してください")
	}
	if opts.postingCount < 0 {
		opts.postingCount = 0
	}
	if opts.reviewCount < 0 {
		opts.reviewCount = 0
	}
	return opts
}

// loadEnvFiles は存在する env ファイルだけを読み込む。既に設定済みの環境変数は上書きしない。
func loadEnvFiles(envName string) {
	base := filepath.Clean(filepath.Join("..", "env"))
	for _, file := range []string{
		filepath.Join(base, "shared.env"),
		filepath.Join(base, fmt.Sprintf("%s.env", envName)),
		".env",
	} {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			log.Fatalf("%s の読み込みに失敗しました: %v", file, err)
		}
	}
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func dropCollections(ctx context.Context, db *mongo.Database, cols mongodoc.Collections) {
	for _, name := range []string{
		cols.Postings, cols.EmployerProfiles, cols.LodgingProfiles, cols.Reviews,
		cols.Applications, cols.Notifications, cols.FailedNotifications,
	} {
		if err := db.Collection(name).Drop(ctx); err != nil {
			log.Printf("WARN: コレクション %s の削除に失敗: %v", name, err)
		}
	}
}

// generateEmployer は雇用主プロフィールと、半数程度の確率で寮情報を生成する。
// 寮情報を持たないが lodgingOffered=true の雇用主も混ぜる。
func generateEmployer(rng *rand.Rand, index int) (mongodoc.EmployerProfileDocument, *mongodoc.LodgingProfileDocument) {
	region := regions[rng.Intn(len(regions))]
	district := region.districts[rng.Intn(len(region.districts))]
	employerID := fmt.Sprintf("employer-%03d", index+1)
	name := fmt.Sprintf("%s %s", resortNames[rng.Intn(len(resortNames))], resortKinds[rng.Intn(len(resortKinds))])

	hasLodging := rng.Intn(2) == 0
	profile := mongodoc.EmployerProfileDocument{
		EmployerID:     employerID,
		Name:           name,
		Region:         fmt.Sprintf("%s %s %s로 %d", region.province, district, resortNames[rng.Intn(len(resortNames))], 10+rng.Intn(300)),
		ContactName:    "채용 담당자",
		ContactPhone:   fmt.Sprintf("010-%04d-%04d", rng.Intn(10000), rng.Intn(10000)),
		ContactEmail:   fmt.Sprintf("recruit+%s@resort-crew.example", employerID),
		LodgingOffered: hasLodging || rng.Intn(4) == 0,
	}
	if profile.LodgingOffered {
		profile.LodgingFacilities = pickUnique(rng, publicdomain.AllowedLodgingFacilities, 2+rng.Intn(3))
	}
	if !hasLodging {
		return profile, nil
	}

	lodging := &mongodoc.LodgingProfileDocument{
		EmployerID: employerID,
		Capacity:   10 + rng.Intn(90),
		Images: []string{
			fmt.Sprintf("https://cdn.resort-crew.example/lodging/%s/1.jpg", employerID),
		},
		RoomTypes: []mongodoc.RoomTypeDocument{
			{Name: "2인실", MonthlyPrice: 150000 + rng.Intn(10)*10000},
			{Name: "4인실", MonthlyPrice: 80000 + rng.Intn(8)*10000},
		},
	}
	return profile, lodging
}

// generatePosting は公開状態の組み合わせ (承認/非表示/非アクティブ/フラグ欠損) を混在させる。
func generatePosting(rng *rand.Rand, employerIDs []string, now time.Time) mongodoc.PostingDocument {
	created := now.Add(-time.Duration(rng.Intn(60*24)) * time.Hour)
	statuses := []publicdomain.PostingStatus{
		publicdomain.PostingApproved, publicdomain.PostingApproved, publicdomain.PostingApproved,
		publicdomain.PostingDraft, publicdomain.PostingRejected,
	}
	minPay := 2000000 + rng.Intn(10)*100000
	doc := mongodoc.PostingDocument{
		EmployerID:  employerIDs[rng.Intn(len(employerIDs))],
		Title:       jobTitles[rng.Intn(len(jobTitles))],
		Description: "시즌 근무자를 모집합니다. 숙소 및 식사 지원 여부는 상세 정보를 확인해주세요.",
		Location:    regions[rng.Intn(len(regions))].province,
		Salary:      mongodoc.SalaryDocument{Min: minPay, Max: minPay + rng.Intn(6)*100000, Unit: "월"},
		Status:      string(statuses[rng.Intn(len(statuses))]),
		CreatedAt:   &created,
		UpdatedAt:   &created,
	}

	switch rng.Intn(6) {
	case 0:
		doc.IsHidden = boolPtr(true)
	case 1:
		doc.IsActive = boolPtr(false)
	case 2:
		doc.IsHidden = boolPtr(false)
		doc.IsActive = boolPtr(true)
	default:
		// フラグ欠損のレコード
	}
	if rng.Intn(10) == 0 {
		doc.CreatedAt = nil
	}
	return doc
}

// generateReview は一部のレビューに評価を付けない。
func generateReview(rng *rand.Rand, employerIDs []string, now time.Time) mongodoc.ReviewDocument {
	doc := mongodoc.ReviewDocument{
		EmployerID: employerIDs[rng.Intn(len(employerIDs))],
		Content:    "근무 환경과 숙소에 대한 후기입니다.",
		CreatedAt:  now.Add(-time.Duration(rng.Intn(365*24)) * time.Hour),
	}
	switch rng.Intn(4) {
	case 0:
		doc.AccommodationRating = floatPtr(randomRating(rng))
	case 1:
		doc.OverallRating = floatPtr(randomRating(rng))
	case 2:
		doc.AccommodationRating = floatPtr(randomRating(rng))
		doc.OverallRating = floatPtr(randomRating(rng))
	default:
		// 評価なし
	}
	return doc
}

func postingVisible(doc mongodoc.PostingDocument) bool {
	p := publicdomain.JobPosting{
		Status:   publicdomain.PostingStatus(doc.Status),
		IsHidden: doc.IsHidden,
		IsActive: doc.IsActive,
	}
	return p.Visible()
}

func pickUnique(rng *rand.Rand, source []string, count int) []string {
	if count >= len(source) {
		cp := make([]string, len(source))
		copy(cp, source)
		return cp
	}
	seen := make(map[int]struct{}, count)
	result := make([]string, 0, count)
	for len(result) < count {
		idx := rng.Intn(len(source))
		if _, ok := seen[idx]; ok {
			continue
		}
		seen[idx] = struct{}{}
		result = append(result, source[idx])
	}
	return result
}

func randomRating(rng *rand.Rand) float64 {
	return round(1+rng.Float64()*4, 1)
}

func round(val float64, precision int) float64 {
	factor := math.Pow(10, float64(precision))
	return math.Round(val*factor) / factor
}

func boolPtr(v bool) *bool { return &v }

func floatPtr(v float64) *float64 { return &v }
