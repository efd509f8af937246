package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/adbridge/adbridge-backend/internal/domain"
	"github.com/adbridge/adbridge-backend/internal/handler"
	"github.com/adbridge/adbridge-backend/internal/migration"
	"github.com/adbridge/adbridge-backend/internal/repository"
	"github.com/adbridge/adbridge-backend/internal/routes"
	"github.com/adbridge/adbridge-backend/internal/service"
	"github.com/adbridge/adbridge-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const fallbackURL = "https://adbridge.test"

var errCacheMiss = errors.New("cache miss")

// memCache is an in-memory cache.Service so the handler cache paths run
// without Redis.
type memCache struct {
	data map[string][]byte
}

func newMemCache() *memCache { return &memCache{data: make(map[string][]byte)} }

func (m *memCache) get(key string) ([]byte, error) {
	if b, ok := m.data[key]; ok {
		return b, nil
	}
	return nil, errCacheMiss
}

func (m *memCache) set(key string, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.data[key] = b
	return nil
}

func (m *memCache) GetCategoryTree(_ context.Context) ([]byte, error) { return m.get("tree") }
func (m *memCache) SetCategoryTree(_ context.Context, v interface{}) error {
	return m.set("tree", v)
}
func (m *memCache) GetCampaignList(_ context.Context, key string) ([]byte, error) {
	return m.get("list:" + key)
}
func (m *memCache) SetCampaignList(_ context.Context, key string, v interface{}) error {
	return m.set("list:"+key, v)
}
func (m *memCache) InvalidateCampaignLists(_ context.Context) error {
	for k := range m.data {
		if strings.HasPrefix(k, "list:") {
			delete(m.data, k)
		}
	}
	return nil
}
func (m *memCache) GetCampaign(_ context.Context, id string) ([]byte, error) {
	return m.get("campaign:" + id)
}
func (m *memCache) SetCampaign(_ context.Context, id string, v interface{}) error {
	return m.set("campaign:"+id, v)
}
func (m *memCache) InvalidateCampaign(_ context.Context, id string) error {
	delete(m.data, "campaign:"+id)
	return nil
}

// APISuite exercises the HTTP surface end to end against in-memory SQLite
type APISuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
	cache  *memCache

	advertiserToken string
	creatorToken    string
	advertiserID    uint64
	creatorID       uint64
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APISuite))
}

func (s *APISuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	s.Require().NoError(err)
	s.Require().NoError(migration.Run(db))
	s.db = db

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	campaignRepo := repository.NewCampaignRepository(db)
	appRepo := repository.NewApplicationRepository(db)
	clickRepo := repository.NewClickRepository(db)
	shopRepo := repository.NewShopRepository(db)

	jwtManager := jwt.NewManager("test-secret-key", 900, 86400)
	authService := service.NewAuthService(userRepo, jwtManager)
	appService := service.NewApplicationService(appRepo, campaignRepo)
	trackingService := service.NewTrackingService(campaignRepo, clickRepo, fallbackURL)
	statsService := service.NewStatsService(campaignRepo, appRepo, clickRepo)

	s.cache = newMemCache()
	s.router = gin.New()
	routes.Setup(s.router,
		handler.NewTrackingHandler(trackingService),
		handler.NewAuthHandler(authService),
		handler.NewCampaignHandler(campaignRepo, categoryRepo, s.cache),
		handler.NewAdvertiserHandler(campaignRepo, appService, statsService, s.cache),
		handler.NewCreatorHandler(appService, statsService, appRepo, shopRepo),
		jwtManager,
		nil,
	)

	s.advertiserToken, s.advertiserID = s.register(gin.H{
		"email": "adv@test.com", "password": "password123",
		"role": "advertiser", "brand_name": "TestBrand",
	})
	s.creatorToken, s.creatorID = s.register(gin.H{
		"email": "creator@test.com", "password": "password123",
		"role": "creator", "handle": "testcreator", "followers_count": 5000,
	})
}

// --- helpers ---

func (s *APISuite) request(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *APISuite) decode(w *httptest.ResponseRecorder) map[string]interface{} {
	var resp map[string]interface{}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func (s *APISuite) register(payload gin.H) (string, uint64) {
	w := s.request(http.MethodPost, "/api/v1/auth/register", "", payload)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	data := s.decode(w)["data"].(map[string]interface{})
	token := data["access_token"].(string)
	userID := uint64(data["user"].(map[string]interface{})["id"].(float64))
	return token, userID
}

func (s *APISuite) createCampaign(amount float64, targetURL string) uint64 {
	w := s.request(http.MethodPost, "/api/v1/advertiser/campaigns", s.advertiserToken, gin.H{
		"product_name":  "Test Product",
		"price":         19900,
		"target_url":    targetURL,
		"reward_type":   "cpc",
		"reward_amount": amount,
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	data := s.decode(w)["data"].(map[string]interface{})
	return uint64(data["id"].(float64))
}

func (s *APISuite) approveCreator(campaignID uint64) {
	w := s.request(http.MethodPost, fmt.Sprintf("/api/v1/creator/campaigns/%d/apply", campaignID), s.creatorToken, nil)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	appID := uint64(s.decode(w)["data"].(map[string]interface{})["id"].(float64))

	w = s.request(http.MethodPatch, fmt.Sprintf("/api/v1/advertiser/applications/%d", appID), s.advertiserToken, gin.H{"status": "approved"})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
}

func (s *APISuite) clickCount(campaignID uint64) int64 {
	var count int64
	s.db.Model(&domain.Click{}).Where("campaign_id = ?", campaignID).Count(&count)
	return count
}

// --- auth ---

func (s *APISuite) TestRegisterDuplicateEmail() {
	w := s.request(http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"email": "adv@test.com", "password": "password123",
		"role": "advertiser", "brand_name": "Other",
	})
	s.Equal(http.StatusConflict, w.Code)
	errInfo := s.decode(w)["error"].(map[string]interface{})
	s.Equal("EMAIL_TAKEN", errInfo["code"])
}

func (s *APISuite) TestRegisterCreatorRequiresHandle() {
	w := s.request(http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"email": "nohandle@test.com", "password": "password123", "role": "creator",
	})
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *APISuite) TestLoginAndMe() {
	w := s.request(http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email": "creator@test.com", "password": "password123",
	})
	s.Require().Equal(http.StatusOK, w.Code)
	token := s.decode(w)["data"].(map[string]interface{})["access_token"].(string)

	w = s.request(http.MethodGet, "/api/v1/users/me", token, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	user := s.decode(w)["data"].(map[string]interface{})
	s.Equal("creator@test.com", user["email"])
	s.Equal("creator", user["role"])
}

func (s *APISuite) TestLoginWrongPassword() {
	w := s.request(http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email": "creator@test.com", "password": "wrong-password",
	})
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *APISuite) TestRefreshIssuesNewPair() {
	w := s.request(http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email": "creator@test.com", "password": "password123",
	})
	s.Require().Equal(http.StatusOK, w.Code)
	refreshToken := s.decode(w)["data"].(map[string]interface{})["refresh_token"].(string)

	w = s.request(http.MethodPost, "/api/v1/auth/refresh", "", gin.H{"refresh_token": refreshToken})
	s.Require().Equal(http.StatusOK, w.Code)
	data := s.decode(w)["data"].(map[string]interface{})
	s.NotEmpty(data["access_token"])
}

func (s *APISuite) TestRefreshRejectsAccessToken() {
	// An access token replayed into the refresh path must not mint a new pair
	w := s.request(http.MethodPost, "/api/v1/auth/refresh", "", gin.H{"refresh_token": s.creatorToken})
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *APISuite) TestUpdateProfile() {
	w := s.request(http.MethodPatch, "/api/v1/users/me", s.creatorToken, gin.H{
		"bio": "link in bio", "followers_count": 12000,
	})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	detail := s.decode(w)["data"].(map[string]interface{})["creator_detail"].(map[string]interface{})
	s.Equal("link in bio", detail["bio"])
	s.Equal(float64(12000), detail["followers_count"])
	// Untouched fields survive the partial update
	s.Equal("testcreator", detail["handle"])
}

// --- public catalog ---

func (s *APISuite) TestPublicListMasksRewardForAnonymous() {
	s.createCampaign(500, "https://shop.example.com/p/1")

	w := s.request(http.MethodGet, "/api/v1/campaigns", "", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	items := s.decode(w)["data"].([]interface{})
	s.Require().Len(items, 1)
	item := items[0].(map[string]interface{})
	s.NotContains(item, "reward_amount")
	s.NotContains(item["product"].(map[string]interface{}), "price")

	// Authenticated creators see the full offer
	w = s.request(http.MethodGet, "/api/v1/campaigns", s.creatorToken, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	item = s.decode(w)["data"].([]interface{})[0].(map[string]interface{})
	s.Equal(float64(500), item["reward_amount"])
	s.Equal(float64(19900), item["product"].(map[string]interface{})["price"])
}

func (s *APISuite) TestCategoryTree() {
	w := s.request(http.MethodGet, "/api/v1/categories", "", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	tree := s.decode(w)["data"].([]interface{})
	s.NotEmpty(tree)
	root := tree[0].(map[string]interface{})
	s.Contains(root, "children")
}

func (s *APISuite) TestCampaignDetailNotFound() {
	w := s.request(http.MethodGet, "/api/v1/campaigns/99999", "", nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *APISuite) TestCampaignDetailCacheForAnonymous() {
	campaignID := s.createCampaign(500, "https://shop.example.com/p/1")
	path := fmt.Sprintf("/api/v1/campaigns/%d", campaignID)

	w := s.request(http.MethodGet, path, "", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal("MISS", w.Header().Get("X-Cache"))

	w = s.request(http.MethodGet, path, "", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal("HIT", w.Header().Get("X-Cache"))
	data := s.decode(w)["data"].(map[string]interface{})
	s.NotContains(data, "reward_amount")

	// Authenticated reads see unmasked amounts and never touch the cache
	w = s.request(http.MethodGet, path, s.creatorToken, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Empty(w.Header().Get("X-Cache"))
	data = s.decode(w)["data"].(map[string]interface{})
	s.Equal(float64(500), data["reward_amount"])

	// Updating the campaign drops the cached detail page
	w = s.request(http.MethodPatch, fmt.Sprintf("/api/v1/advertiser/campaigns/%d", campaignID),
		s.advertiserToken, gin.H{"reward_amount": 900.0})
	s.Require().Equal(http.StatusOK, w.Code)

	w = s.request(http.MethodGet, path, "", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal("MISS", w.Header().Get("X-Cache"))
}

func (s *APISuite) TestCampaignListCacheForAnonymous() {
	s.createCampaign(500, "https://shop.example.com/p/1")

	w := s.request(http.MethodGet, "/api/v1/campaigns", "", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal("MISS", w.Header().Get("X-Cache"))

	w = s.request(http.MethodGet, "/api/v1/campaigns", "", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal("HIT", w.Header().Get("X-Cache"))

	// Creating a campaign drops every cached list variant
	s.createCampaign(700, "https://shop.example.com/p/2")
	w = s.request(http.MethodGet, "/api/v1/campaigns", "", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal("MISS", w.Header().Get("X-Cache"))
	s.Len(s.decode(w)["data"].([]interface{}), 2)
}

// --- role gates ---

func (s *APISuite) TestRoleGates() {
	// Creator cannot reach the advertiser console
	w := s.request(http.MethodGet, "/api/v1/advertiser/campaigns", s.creatorToken, nil)
	s.Equal(http.StatusForbidden, w.Code)

	// Advertiser cannot apply to campaigns
	w = s.request(http.MethodPost, "/api/v1/creator/campaigns/1/apply", s.advertiserToken, nil)
	s.Equal(http.StatusForbidden, w.Code)

	// Anonymous gets 401
	w = s.request(http.MethodGet, "/api/v1/advertiser/campaigns", "", nil)
	s.Equal(http.StatusUnauthorized, w.Code)
}

// --- applications ---

func (s *APISuite) TestApplyTwiceIsDistinguishableConflict() {
	campaignID := s.createCampaign(500, "https://shop.example.com/p/1")

	path := fmt.Sprintf("/api/v1/creator/campaigns/%d/apply", campaignID)
	w := s.request(http.MethodPost, path, s.creatorToken, nil)
	s.Require().Equal(http.StatusCreated, w.Code)
	s.Equal("pending", s.decode(w)["data"].(map[string]interface{})["status"])

	w = s.request(http.MethodPost, path, s.creatorToken, nil)
	s.Equal(http.StatusConflict, w.Code)
	errInfo := s.decode(w)["error"].(map[string]interface{})
	s.Equal("ALREADY_APPLIED", errInfo["code"])
}

func (s *APISuite) TestApplyToUnknownCampaign() {
	w := s.request(http.MethodPost, "/api/v1/creator/campaigns/99999/apply", s.creatorToken, nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *APISuite) TestDecisionLifecycle() {
	campaignID := s.createCampaign(500, "https://shop.example.com/p/1")

	w := s.request(http.MethodPost, fmt.Sprintf("/api/v1/creator/campaigns/%d/apply", campaignID), s.creatorToken, nil)
	s.Require().Equal(http.StatusCreated, w.Code)
	appID := uint64(s.decode(w)["data"].(map[string]interface{})["id"].(float64))

	// Pending feed shows the application
	w = s.request(http.MethodGet, "/api/v1/advertiser/applications/pending", s.advertiserToken, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Len(s.decode(w)["data"].([]interface{}), 1)

	decidePath := fmt.Sprintf("/api/v1/advertiser/applications/%d", appID)

	// A foreign advertiser cannot decide it
	otherToken, _ := s.register(gin.H{
		"email": "other@test.com", "password": "password123",
		"role": "advertiser", "brand_name": "OtherBrand",
	})
	w = s.request(http.MethodPatch, decidePath, otherToken, gin.H{"status": "approved"})
	s.Equal(http.StatusForbidden, w.Code)

	// Approve, then flip to rejected: decisions stay mutable
	w = s.request(http.MethodPatch, decidePath, s.advertiserToken, gin.H{"status": "approved"})
	s.Equal(http.StatusOK, w.Code)
	w = s.request(http.MethodPatch, decidePath, s.advertiserToken, gin.H{"status": "rejected"})
	s.Equal(http.StatusOK, w.Code)

	w = s.request(http.MethodPatch, decidePath, s.advertiserToken, gin.H{"status": "bogus"})
	s.Equal(http.StatusBadRequest, w.Code)
}

// --- tracking ---

func (s *APISuite) TestTrackingRedirectLogsClick() {
	campaignID := s.createCampaign(500, "https://shop.example.com/p/1")

	w := s.request(http.MethodGet, fmt.Sprintf("/cl/%d/%d", campaignID, s.creatorID), "", nil)
	s.Equal(http.StatusFound, w.Code)
	s.Equal("https://shop.example.com/p/1", w.Header().Get("Location"))
	s.Equal(int64(1), s.clickCount(campaignID))
}

func (s *APISuite) TestTrackingNoDedup() {
	campaignID := s.createCampaign(500, "https://shop.example.com/p/1")

	path := fmt.Sprintf("/cl/%d/%d", campaignID, s.creatorID)
	for i := 0; i < 5; i++ {
		w := s.request(http.MethodGet, path, "", nil)
		s.Equal(http.StatusFound, w.Code)
	}
	s.Equal(int64(5), s.clickCount(campaignID))
}

func (s *APISuite) TestTrackingUnknownCampaignWritesNothing() {
	w := s.request(http.MethodGet, fmt.Sprintf("/cl/99999/%d", s.creatorID), "", nil)
	s.Equal(http.StatusNotFound, w.Code)

	var total int64
	s.db.Model(&domain.Click{}).Count(&total)
	s.Equal(int64(0), total)
}

func (s *APISuite) TestTrackingMalformedIDs() {
	w := s.request(http.MethodGet, "/cl/abc/def", "", nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *APISuite) TestTrackingEmptyTargetFallsBackAndStillLogs() {
	campaignID := s.createCampaign(500, "")

	w := s.request(http.MethodGet, fmt.Sprintf("/cl/%d/%d", campaignID, s.creatorID), "", nil)
	s.Equal(http.StatusFound, w.Code)
	s.Equal(fallbackURL, w.Header().Get("Location"))
	s.Equal(int64(1), s.clickCount(campaignID))
}

// --- stats ---

func (s *APISuite) TestCampaignStats() {
	campaignID := s.createCampaign(500, "https://shop.example.com/p/1")

	path := fmt.Sprintf("/cl/%d/%d", campaignID, s.creatorID)
	for i := 0; i < 3; i++ {
		s.request(http.MethodGet, path, "", nil)
	}

	w := s.request(http.MethodGet, fmt.Sprintf("/api/v1/advertiser/campaigns/%d/stats", campaignID), s.advertiserToken, nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	stats := s.decode(w)["data"].(map[string]interface{})
	s.Equal(float64(3), stats["totalClicks"])
	s.Equal(float64(1500), stats["estimatedSpend"])
}

func (s *APISuite) TestCampaignStatsOwnershipRequired() {
	campaignID := s.createCampaign(500, "https://shop.example.com/p/1")

	otherToken, _ := s.register(gin.H{
		"email": "other@test.com", "password": "password123",
		"role": "advertiser", "brand_name": "OtherBrand",
	})
	w := s.request(http.MethodGet, fmt.Sprintf("/api/v1/advertiser/campaigns/%d/stats", campaignID), otherToken, nil)
	s.Equal(http.StatusForbidden, w.Code)
}

func (s *APISuite) TestDashboardStats() {
	c1 := s.createCampaign(500, "https://a.example.com")
	c2 := s.createCampaign(200, "https://b.example.com")
	s.approveCreator(c1)

	s.request(http.MethodGet, fmt.Sprintf("/cl/%d/%d", c1, s.creatorID), "", nil)
	s.request(http.MethodGet, fmt.Sprintf("/cl/%d/%d", c1, s.creatorID), "", nil)
	s.request(http.MethodGet, fmt.Sprintf("/cl/%d/%d", c2, s.creatorID), "", nil)

	w := s.request(http.MethodGet, "/api/v1/advertiser/dashboard/stats", s.advertiserToken, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	stats := s.decode(w)["data"].(map[string]interface{})
	s.Equal(float64(3), stats["total_clicks"])
	s.Equal(float64(1), stats["active_creators_count"])
}

func (s *APISuite) TestCampaignCreatorsView() {
	campaignID := s.createCampaign(500, "https://shop.example.com/p/1")
	s.approveCreator(campaignID)
	s.request(http.MethodGet, fmt.Sprintf("/cl/%d/%d", campaignID, s.creatorID), "", nil)

	w := s.request(http.MethodGet, fmt.Sprintf("/api/v1/advertiser/campaigns/%d/creators", campaignID), s.advertiserToken, nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	data := s.decode(w)["data"].(map[string]interface{})
	s.Equal(float64(1), data["active_count"])
	creators := data["creators"].([]interface{})
	s.Require().Len(creators, 1)
	row := creators[0].(map[string]interface{})
	s.Equal("testcreator", row["handle"])
	s.Equal(float64(1), row["clicks"])
}

// --- creator console ---

func (s *APISuite) TestCreatorMyCampaignsWithClicks() {
	campaignID := s.createCampaign(500, "https://shop.example.com/p/1")
	s.approveCreator(campaignID)
	s.request(http.MethodGet, fmt.Sprintf("/cl/%d/%d", campaignID, s.creatorID), "", nil)

	w := s.request(http.MethodGet, "/api/v1/creator/campaigns", s.creatorToken, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	rows := s.decode(w)["data"].([]interface{})
	s.Require().Len(rows, 1)
	row := rows[0].(map[string]interface{})
	s.Equal(float64(1), row["clicks"])
	s.Equal(fmt.Sprintf("/cl/%d/%d", campaignID, s.creatorID), row["tracking_path"])
}

func (s *APISuite) TestShopRequiresApproval() {
	campaignID := s.createCampaign(500, "https://shop.example.com/p/1")

	w := s.request(http.MethodPost, "/api/v1/creator/shop", s.creatorToken, gin.H{"campaign_id": campaignID})
	s.Equal(http.StatusForbidden, w.Code)

	s.approveCreator(campaignID)

	w = s.request(http.MethodPost, "/api/v1/creator/shop", s.creatorToken, gin.H{"campaign_id": campaignID})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	link := s.decode(w)["data"].(map[string]interface{})["custom_link"].(string)
	s.Len(link, 12)

	// Same campaign cannot be listed twice
	w = s.request(http.MethodPost, "/api/v1/creator/shop", s.creatorToken, gin.H{"campaign_id": campaignID})
	s.Equal(http.StatusConflict, w.Code)

	w = s.request(http.MethodGet, "/api/v1/creator/shop", s.creatorToken, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	items := s.decode(w)["data"].([]interface{})
	s.Require().Len(items, 1)
	itemID := uint64(items[0].(map[string]interface{})["id"].(float64))

	w = s.request(http.MethodDelete, fmt.Sprintf("/api/v1/creator/shop/%d", itemID), s.creatorToken, nil)
	s.Equal(http.StatusOK, w.Code)
}
