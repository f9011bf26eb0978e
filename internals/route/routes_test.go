package routes

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"santri_backend/internals/configs"
	"santri_backend/internals/constants"
	"santri_backend/internals/databases/dbtest"
	anModel "santri_backend/internals/features/pesantren/announcements/model"
	aModel "santri_backend/internals/features/pesantren/assessments/model"
	cModel "santri_backend/internals/features/pesantren/criteria/model"
	scModel "santri_backend/internals/features/pesantren/scores/model"
	sesModel "santri_backend/internals/features/pesantren/sessions/model"
	sModel "santri_backend/internals/features/pesantren/students/model"
	authModel "santri_backend/internals/features/users/auth/model"
	authService "santri_backend/internals/features/users/auth/service"
	waliModel "santri_backend/internals/features/wali/accounts/model"
	"santri_backend/internals/features/wali/auth/session"
	helper "santri_backend/internals/helpers"
	helperAuth "santri_backend/internals/helpers/auth"
	"santri_backend/internals/helpers/phone"
)

type harness struct {
	app *fiber.App
	db  *gorm.DB
}

type envelope struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	RedirectTo string `json:"redirect_to"`
	Data       any    `json:"data"`
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	configs.JWTSecret = "rahasia-test"

	db := dbtest.Open(t,
		&authModel.ProfileModel{}, &authModel.TokenBlacklist{},
		&sModel.StudentModel{}, &cModel.CriteriaRefModel{}, &sesModel.SessionRefModel{},
		&aModel.DailyAssessmentModel{}, &scModel.DailyScoreModel{}, &anModel.AnnouncementModel{},
		&waliModel.WaliSantriModel{}, &waliModel.WaliSantriChildModel{},
	)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	app := fiber.New(fiber.Config{
		JSONEncoder:   sonic.Marshal,
		JSONDecoder:   sonic.Unmarshal,
		ErrorHandler:  helper.ErrorHandler,
		CaseSensitive: true,
	})
	SetupRoutes(app, db, session.NewStore(rdb, time.Hour))
	return &harness{app: app, db: db}
}

func (h *harness) staffToken(t *testing.T, role, email string) string {
	t.Helper()
	hash, err := helperAuth.HashPassword("bismillah")
	require.NoError(t, err)
	p := &authModel.ProfileModel{Email: email, FullName: role, Role: role, Password: hash, IsActive: true}
	require.NoError(t, h.db.Create(p).Error)
	tok, _, err := authService.IssueToken(configs.JWTSecret, p, time.Now(), time.Hour)
	require.NoError(t, err)
	return tok
}

type reqOpt func(*http.Request)

func bearer(tok string) reqOpt {
	return func(r *http.Request) { r.Header.Set(fiber.HeaderAuthorization, "Bearer "+tok) }
}

func cookie(name, value string) reqOpt {
	return func(r *http.Request) { r.AddCookie(&http.Cookie{Name: name, Value: value}) }
}

func (h *harness) do(t *testing.T, method, path, body string, opts ...reqOpt) (*http.Response, envelope) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	for _, o := range opts {
		o(req)
	}
	resp, err := h.app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	if len(raw) > 0 && strings.HasPrefix(resp.Header.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		require.NoError(t, sonic.Unmarshal(raw, &env), string(raw))
	}
	return resp, env
}

func assertRedirect(t *testing.T, resp *http.Response, env envelope, target string) {
	t.Helper()
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, target, resp.Header.Get(fiber.HeaderLocation))
	assert.Equal(t, target, env.RedirectTo)
	assert.False(t, env.Success)
}

func TestAnonymousIsRedirectedToLogin(t *testing.T) {
	h := newHarness(t)

	resp, env := h.do(t, http.MethodGet, "/api/admin/students", "")
	assertRedirect(t, resp, env, helperAuth.StaffLoginPath)

	resp, env = h.do(t, http.MethodGet, "/api/ustadz/dashboard", "")
	assertRedirect(t, resp, env, helperAuth.StaffLoginPath)

	resp, env = h.do(t, http.MethodGet, "/api/wali/children", "")
	assertRedirect(t, resp, env, helperAuth.ParentLoginPath)

	resp, env = h.do(t, http.MethodGet, "/dashboard", "")
	assertRedirect(t, resp, env, helperAuth.StaffLoginPath)

	// huruf besar/kecil pada path tidak boleh melewati Guard
	resp, env = h.do(t, http.MethodGet, "/API/ADMIN/students", "")
	assertRedirect(t, resp, env, helperAuth.StaffLoginPath)

	resp, env = h.do(t, http.MethodGet, "/Api/Admin/wali", "")
	assertRedirect(t, resp, env, helperAuth.StaffLoginPath)

	resp, env = h.do(t, http.MethodPost, "/API/ADMIN/students", `{"name":"Santri Baru","halaqah":"A"}`)
	assertRedirect(t, resp, env, helperAuth.StaffLoginPath)
	var n int64
	require.NoError(t, h.db.Model(&sModel.StudentModel{}).Count(&n).Error)
	assert.Zero(t, n)

	resp, _ = h.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRoleSections(t *testing.T) {
	h := newHarness(t)
	super := h.staffToken(t, constants.RoleSuperAdmin, "super@pesantren.id")
	admin := h.staffToken(t, constants.RoleAdmin, "admin@pesantren.id")
	ustadz := h.staffToken(t, constants.RoleUstadz, "ustadz@pesantren.id")

	resp, _ := h.do(t, http.MethodGet, "/api/admin/students", "", bearer(super))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp, _ = h.do(t, http.MethodGet, "/api/ustadz/dashboard", "", bearer(super))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = h.do(t, http.MethodGet, "/api/admin/dashboard", "", bearer(admin))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp, env := h.do(t, http.MethodGet, "/api/ustadz/dashboard", "", bearer(admin))
	assertRedirect(t, resp, env, helperAuth.AdminHomePath)

	resp, env = h.do(t, http.MethodGet, "/api/admin/students", "", bearer(ustadz))
	assertRedirect(t, resp, env, helperAuth.TeacherHomePath)
	resp, _ = h.do(t, http.MethodGet, "/api/ustadz/criteria", "", bearer(ustadz))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// staff tanpa sesi wali di bagian wali
	resp, env = h.do(t, http.MethodGet, "/api/wali/dashboard", "", bearer(admin))
	assertRedirect(t, resp, env, helperAuth.ParentLoginPath)

	resp, env = h.do(t, http.MethodGet, "/dashboard", "", bearer(ustadz))
	assertRedirect(t, resp, env, helperAuth.TeacherHomePath)
	resp, env = h.do(t, http.MethodGet, "/dashboard", "", cookie("access_token", admin))
	assertRedirect(t, resp, env, helperAuth.AdminHomePath)
}

func TestStaffLoginAndLogout(t *testing.T) {
	h := newHarness(t)
	h.staffToken(t, constants.RoleAdmin, "admin@pesantren.id")

	resp, env := h.do(t, http.MethodPost, "/api/auth/login", `{"email":"admin@pesantren.id","password":"salah123"}`)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.False(t, env.Success)

	resp, env = h.do(t, http.MethodPost, "/api/auth/login", `{"email":"admin@pesantren.id","password":"bismillah"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, helperAuth.AdminHomePath, data["redirect_to"])
	tok, _ := data["access_token"].(string)
	require.NotEmpty(t, tok)

	resp, _ = h.do(t, http.MethodGet, "/api/auth/me", "", bearer(tok))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = h.do(t, http.MethodPost, "/api/auth/logout", "", bearer(tok))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, env = h.do(t, http.MethodGet, "/api/admin/students", "", bearer(tok))
	assertRedirect(t, resp, env, helperAuth.StaffLoginPath)
	resp, _ = h.do(t, http.MethodGet, "/api/auth/me", "", bearer(tok))
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestValidationErrorIs422(t *testing.T) {
	h := newHarness(t)
	admin := h.staffToken(t, constants.RoleAdmin, "admin@pesantren.id")

	resp, env := h.do(t, http.MethodPost, "/api/admin/criteria", `{"aspect":"olahraga","title":"x"}`, bearer(admin))
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.False(t, env.Success)
}

func TestCriteriaToggleFlipsOnlyTarget(t *testing.T) {
	h := newHarness(t)
	admin := h.staffToken(t, constants.RoleAdmin, "admin@pesantren.id")

	for _, title := range []string{"Hadir tepat waktu", "Berpakaian rapi", "Membawa mushaf"} {
		resp, _ := h.do(t, http.MethodPost, "/api/admin/criteria", `{"aspect":"discipline","title":"`+title+`"}`, bearer(admin))
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	var before []cModel.CriteriaRefModel
	require.NoError(t, h.db.Order("sort_order").Find(&before).Error)
	require.Len(t, before, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{before[0].SortOrder, before[1].SortOrder, before[2].SortOrder})

	target := before[1]
	resp, _ := h.do(t, http.MethodPatch, "/api/admin/criteria/"+target.ID.String()+"/toggle", "", bearer(admin))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var after []cModel.CriteriaRefModel
	require.NoError(t, h.db.Order("sort_order").Find(&after).Error)
	for i := range after {
		assert.Equal(t, before[i].ID, after[i].ID)
		assert.Equal(t, before[i].SortOrder, after[i].SortOrder)
		assert.Equal(t, before[i].Title, after[i].Title)
		assert.Equal(t, after[i].ID != target.ID, after[i].IsActive)
	}
}

func TestWaliFlow(t *testing.T) {
	h := newHarness(t)
	admin := h.staffToken(t, constants.RoleAdmin, "admin@pesantren.id")

	st := sModel.StudentModel{Name: "Ahmad", Halaqah: "Abu Bakar"}
	require.NoError(t, h.db.Create(&st).Error)

	resp, env := h.do(t, http.MethodPost, "/api/admin/wali", `{"phone":"+62 812-3456-7890","name":"Bu Aminah"}`, bearer(admin))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	created, _ := env.Data.(map[string]any)
	waliID, _ := created["id"].(string)
	require.NotEmpty(t, waliID)
	assert.Equal(t, "081234567890", created["phone"])

	resp, _ = h.do(t, http.MethodPost, "/api/admin/wali", `{"phone":"081234567890","name":"Duplikat"}`, bearer(admin))
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp, _ = h.do(t, http.MethodPut, "/api/admin/wali/"+waliID+"/children", `{"student_ids":["`+st.ID.String()+`"]}`, bearer(admin))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// login dengan password default (6 digit terakhir)
	body := `{"phone":"6281234567890","password":"` + phone.DefaultPassword("081234567890") + `"}`
	resp, _ = h.do(t, http.MethodPost, "/api/wali/auth/login", body)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var sid string
	for _, c := range resp.Cookies() {
		if c.Name == session.CookieName {
			sid = c.Value
		}
	}
	require.NotEmpty(t, sid)

	resp, env = h.do(t, http.MethodGet, "/api/wali/children", "", cookie(session.CookieName, sid))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	kids, _ := env.Data.([]any)
	assert.Len(t, kids, 1)

	resp, _ = h.do(t, http.MethodGet, "/api/wali/dashboard", "", cookie(session.CookieName, sid))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp, _ = h.do(t, http.MethodGet, "/api/wali/auth/me", "", cookie(session.CookieName, sid))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// sesi wali di bagian staff → beranda wali
	resp, env = h.do(t, http.MethodGet, "/api/admin/students", "", cookie(session.CookieName, sid))
	assertRedirect(t, resp, env, helperAuth.ParentHomePath)

	// kosongkan anak → nol relasi
	resp, _ = h.do(t, http.MethodPut, "/api/admin/wali/"+waliID+"/children", `{"student_ids":[]}`, bearer(admin))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var links int64
	require.NoError(t, h.db.Model(&waliModel.WaliSantriChildModel{}).Where("wali_id = ?", waliID).Count(&links).Error)
	assert.Zero(t, links)

	// nonaktifkan akun → sesi dicabut
	resp, _ = h.do(t, http.MethodPatch, "/api/admin/wali/"+waliID+"/toggle", "", bearer(admin))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp, env = h.do(t, http.MethodGet, "/api/wali/children", "", cookie(session.CookieName, sid))
	assertRedirect(t, resp, env, helperAuth.ParentLoginPath)

	resp, _ = h.do(t, http.MethodPost, "/api/wali/auth/login", body)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestWaliChangePassword(t *testing.T) {
	h := newHarness(t)
	hash, err := helperAuth.HashPassword("567890")
	require.NoError(t, err)
	require.NoError(t, h.db.Create(&waliModel.WaliSantriModel{Phone: "081234567890", Name: "Bu Aminah", Password: hash, IsActive: true}).Error)

	resp, _ := h.do(t, http.MethodPost, "/api/wali/auth/login", `{"phone":"081234567890","password":"567890"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var sid string
	for _, c := range resp.Cookies() {
		if c.Name == session.CookieName {
			sid = c.Value
		}
	}

	resp, _ = h.do(t, http.MethodPost, "/api/wali/auth/change-password", `{"old_password":"keliru","new_password":"rahasia99"}`, cookie(session.CookieName, sid))
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, _ = h.do(t, http.MethodPost, "/api/wali/auth/change-password", `{"old_password":"567890","new_password":"rahasia99"}`, cookie(session.CookieName, sid))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = h.do(t, http.MethodPost, "/api/wali/auth/logout", "", cookie(session.CookieName, sid))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp, env := h.do(t, http.MethodGet, "/api/wali/auth/me", "", cookie(session.CookieName, sid))
	assertRedirect(t, resp, env, helperAuth.ParentLoginPath)
}

func (h *harness) waliLogin(t *testing.T, rawPhone, password string) string {
	t.Helper()
	resp, _ := h.do(t, http.MethodPost, "/api/wali/auth/login", `{"phone":"`+rawPhone+`","password":"`+password+`"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	for _, c := range resp.Cookies() {
		if c.Name == session.CookieName {
			return c.Value
		}
	}
	t.Fatal("cookie sesi wali tidak ada")
	return ""
}

func TestWaliPhoneChangeEndsSession(t *testing.T) {
	h := newHarness(t)
	admin := h.staffToken(t, constants.RoleAdmin, "admin@pesantren.id")

	st := sModel.StudentModel{Name: "Ahmad", Halaqah: "Abu Bakar"}
	require.NoError(t, h.db.Create(&st).Error)
	hash, err := helperAuth.HashPassword("567890")
	require.NoError(t, err)
	w := waliModel.WaliSantriModel{Phone: "081234567890", Name: "Bu Aminah", Password: hash, IsActive: true}
	require.NoError(t, h.db.Create(&w).Error)
	require.NoError(t, h.db.Create(&waliModel.WaliSantriChildModel{WaliID: w.ID, StudentID: st.ID}).Error)

	sid := h.waliLogin(t, "081234567890", "567890")
	resp, env := h.do(t, http.MethodGet, "/api/wali/children", "", cookie(session.CookieName, sid))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	kids, _ := env.Data.([]any)
	require.Len(t, kids, 1)

	// ganti nama saja → sesi tetap
	resp, _ = h.do(t, http.MethodPatch, "/api/admin/wali/"+w.ID.String(), `{"name":"Ibu Aminah"}`, bearer(admin))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp, _ = h.do(t, http.MethodGet, "/api/wali/auth/me", "", cookie(session.CookieName, sid))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = h.do(t, http.MethodPatch, "/api/admin/wali/"+w.ID.String(), `{"phone":"089999999999"}`, bearer(admin))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, env = h.do(t, http.MethodGet, "/api/wali/children", "", cookie(session.CookieName, sid))
	assertRedirect(t, resp, env, helperAuth.ParentLoginPath)
	resp, env = h.do(t, http.MethodGet, "/api/wali/auth/me", "", cookie(session.CookieName, sid))
	assertRedirect(t, resp, env, helperAuth.ParentLoginPath)

	sid = h.waliLogin(t, "089999999999", "567890")
	resp, env = h.do(t, http.MethodGet, "/api/wali/children", "", cookie(session.CookieName, sid))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	kids, _ = env.Data.([]any)
	assert.Len(t, kids, 1)
}

func TestWaliSessionRequiresActiveAccount(t *testing.T) {
	h := newHarness(t)
	hash, err := helperAuth.HashPassword("567890")
	require.NoError(t, err)
	w := waliModel.WaliSantriModel{Phone: "081234567890", Name: "Bu Aminah", Password: hash, IsActive: true}
	require.NoError(t, h.db.Create(&w).Error)
	sid := h.waliLogin(t, "081234567890", "567890")

	// akun dinonaktifkan langsung di DB, sesi Redis tidak dicabut
	require.NoError(t, h.db.Model(&w).Update("is_active", false).Error)
	resp, env := h.do(t, http.MethodGet, "/api/wali/dashboard", "", cookie(session.CookieName, sid))
	assertRedirect(t, resp, env, helperAuth.ParentLoginPath)

	require.NoError(t, h.db.Model(&w).Update("is_active", true).Error)
	resp, _ = h.do(t, http.MethodGet, "/api/wali/dashboard", "", cookie(session.CookieName, sid))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NoError(t, h.db.Delete(&waliModel.WaliSantriModel{}, "id = ?", w.ID).Error)
	resp, env = h.do(t, http.MethodGet, "/api/wali/dashboard", "", cookie(session.CookieName, sid))
	assertRedirect(t, resp, env, helperAuth.ParentLoginPath)
}
