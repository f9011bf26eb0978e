package routes

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"santri_backend/internals/constants"
	sesModel "santri_backend/internals/features/pesantren/sessions/model"
	sModel "santri_backend/internals/features/pesantren/students/model"
	authModel "santri_backend/internals/features/users/auth/model"
	waliModel "santri_backend/internals/features/wali/accounts/model"
	"santri_backend/internals/features/wali/auth/session"
	helperAuth "santri_backend/internals/helpers/auth"
)

func dataMap(t *testing.T, env envelope) map[string]any {
	t.Helper()
	m, ok := env.Data.(map[string]any)
	require.True(t, ok, "data bukan objek: %#v", env.Data)
	return m
}

func dataList(t *testing.T, env envelope) []map[string]any {
	t.Helper()
	raw, ok := env.Data.([]any)
	require.True(t, ok, "data bukan array: %#v", env.Data)
	out := make([]map[string]any, 0, len(raw))
	for _, r := range raw {
		m, ok := r.(map[string]any)
		require.True(t, ok)
		out = append(out, m)
	}
	return out
}

func titles(rows []map[string]any) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		s, _ := r["title"].(string)
		out = append(out, s)
	}
	return out
}

func (h *harness) profileID(t *testing.T, email string) string {
	t.Helper()
	var p authModel.ProfileModel
	require.NoError(t, h.db.Where("email = ?", email).First(&p).Error)
	return p.ID.String()
}

func TestSessionCreateOrderingAndTimes(t *testing.T) {
	h := newHarness(t)
	admin := h.staffToken(t, constants.RoleAdmin, "admin@pesantren.id")
	ustadz := h.staffToken(t, constants.RoleUstadz, "ustadz@pesantren.id")

	resp, env := h.do(t, http.MethodPost, "/api/admin/sessions", `{"name":"Subuh","time_start":"04:30","time_end":"05:30"}`, bearer(admin))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	subuh := dataMap(t, env)
	assert.EqualValues(t, 1, subuh["sort_order"])
	assert.Equal(t, "04:30:00", subuh["time_start"])
	assert.Equal(t, "05:30:00", subuh["time_end"])
	assert.Equal(t, true, subuh["is_active"])

	resp, env = h.do(t, http.MethodPost, "/api/admin/sessions", `{"name":"Ba'da Ashar","time_start":"15:30:00","time_end":"16:30"}`, bearer(admin))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	ashar := dataMap(t, env)
	assert.EqualValues(t, 2, ashar["sort_order"])

	for _, body := range []string{
		`{"name":"Terbalik","time_start":"07:00","time_end":"06:00"}`,
		`{"name":"Sama","time_start":"07:00","time_end":"07:00"}`,
		`{"name":"Format","time_start":"7 pagi","time_end":"08:00"}`,
		`{"name":"Kosong","time_end":"08:00"}`,
	} {
		resp, env = h.do(t, http.MethodPost, "/api/admin/sessions", body, bearer(admin))
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode, body)
		assert.False(t, env.Success, body)
	}
	var n int64
	require.NoError(t, h.db.Model(&sesModel.SessionRefModel{}).Count(&n).Error)
	assert.EqualValues(t, 2, n)

	subuhID, _ := subuh["id"].(string)
	resp, env = h.do(t, http.MethodPatch, "/api/admin/sessions/"+subuhID+"/toggle", "", bearer(admin))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	toggled := dataMap(t, env)
	assert.Equal(t, false, toggled["is_active"])
	assert.EqualValues(t, 1, toggled["sort_order"])

	var rows []sesModel.SessionRefModel
	require.NoError(t, h.db.Order("sort_order").Find(&rows).Error)
	require.Len(t, rows, 2)
	assert.False(t, rows[0].IsActive)
	assert.True(t, rows[1].IsActive)
	assert.Equal(t, 2, rows[1].SortOrder)

	// ustadz hanya membaca, dan filter active berlaku
	resp, env = h.do(t, http.MethodGet, "/api/ustadz/sessions?active=true", "", bearer(ustadz))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	active := dataList(t, env)
	require.Len(t, active, 1)
	assert.Equal(t, "Ba'da Ashar", active[0]["name"])

	resp, _ = h.do(t, http.MethodPost, "/api/ustadz/sessions", `{"name":"Isya","time_start":"19:00","time_end":"20:00"}`, bearer(ustadz))
	assert.NotEqual(t, fiber.StatusCreated, resp.StatusCode)
	require.NoError(t, h.db.Model(&sesModel.SessionRefModel{}).Count(&n).Error)
	assert.EqualValues(t, 2, n)
}

func TestTeacherCreateForcesUstadzRole(t *testing.T) {
	h := newHarness(t)
	admin := h.staffToken(t, constants.RoleAdmin, "admin@pesantren.id")

	body := `{"email":"Ustadz.Ali@Pesantren.id","full_name":"Ustadz Ali","password":"rahasia1","role":"super_admin"}`
	resp, env := h.do(t, http.MethodPost, "/api/admin/teachers", body, bearer(admin))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	created := dataMap(t, env)
	assert.Equal(t, constants.RoleUstadz, created["role"])
	assert.Equal(t, "ustadz.ali@pesantren.id", created["email"])

	var p authModel.ProfileModel
	require.NoError(t, h.db.Where("email = ?", "ustadz.ali@pesantren.id").First(&p).Error)
	assert.Equal(t, constants.RoleUstadz, p.Role)
	assert.NotEqual(t, "rahasia1", p.Password)

	resp, _ = h.do(t, http.MethodPost, "/api/admin/teachers", `{"email":"ustadz.ali@pesantren.id","full_name":"Duplikat","password":"rahasia1"}`, bearer(admin))
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	// daftar ustadz tidak memuat akun admin
	resp, env = h.do(t, http.MethodGet, "/api/admin/teachers", "", bearer(admin))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	list := dataList(t, env)
	require.Len(t, list, 1)
	assert.Equal(t, "Ustadz Ali", list[0]["full_name"])

	resp, _ = h.do(t, http.MethodGet, "/api/admin/teachers/"+h.profileID(t, "admin@pesantren.id"), "", bearer(admin))
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, env = h.do(t, http.MethodPost, "/api/auth/login", `{"email":"ustadz.ali@pesantren.id","password":"rahasia1"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, helperAuth.TeacherHomePath, dataMap(t, env)["redirect_to"])
}

func TestAnnouncementAudienceFilter(t *testing.T) {
	h := newHarness(t)
	admin := h.staffToken(t, constants.RoleAdmin, "admin@pesantren.id")
	ustadz := h.staffToken(t, constants.RoleUstadz, "ustadz@pesantren.id")

	for _, body := range []string{
		`{"title":"Libur semester","content":"Mulai **Senin** libur","audience":"all"}`,
		`{"title":"Rapat ustadz","content":"Ba'da Isya","audience":"ustadz"}`,
		`{"title":"Kunjungan wali","content":"Hari Ahad","audience":"wali"}`,
		`{"title":"Draft wali","content":"belum terbit","audience":"wali","is_active":false}`,
	} {
		resp, _ := h.do(t, http.MethodPost, "/api/admin/announcements", body, bearer(admin))
		require.Equal(t, fiber.StatusCreated, resp.StatusCode, body)
	}
	resp, _ := h.do(t, http.MethodPost, "/api/admin/announcements", `{"title":"Salah","content":"x","audience":"santri"}`, bearer(admin))
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	resp, env := h.do(t, http.MethodGet, "/api/ustadz/announcements", "", bearer(ustadz))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.ElementsMatch(t, []string{"Libur semester", "Rapat ustadz"}, titles(dataList(t, env)))

	hash, err := helperAuth.HashPassword("567890")
	require.NoError(t, err)
	require.NoError(t, h.db.Create(&waliModel.WaliSantriModel{Phone: "081234567890", Name: "Bu Aminah", Password: hash, IsActive: true}).Error)
	sid := h.waliLogin(t, "081234567890", "567890")

	resp, env = h.do(t, http.MethodGet, "/api/wali/announcements", "", cookie(session.CookieName, sid))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	rows := dataList(t, env)
	assert.ElementsMatch(t, []string{"Libur semester", "Kunjungan wali"}, titles(rows))
	for _, r := range rows {
		if r["title"] == "Libur semester" {
			assert.Contains(t, r["content_html"], "<strong>Senin</strong>")
		}
	}

	resp, env = h.do(t, http.MethodGet, "/api/admin/announcements", "", bearer(admin))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, dataList(t, env), 4)
}

func TestScoreEndpointsOwnership(t *testing.T) {
	h := newHarness(t)
	admin := h.staffToken(t, constants.RoleAdmin, "admin@pesantren.id")
	super := h.staffToken(t, constants.RoleSuperAdmin, "super@pesantren.id")
	ali := h.staffToken(t, constants.RoleUstadz, "ali@pesantren.id")
	umar := h.staffToken(t, constants.RoleUstadz, "umar@pesantren.id")

	st := sModel.StudentModel{Name: "Ahmad", Halaqah: "Abu Bakar"}
	require.NoError(t, h.db.Create(&st).Error)
	sid := st.ID.String()

	resp, env := h.do(t, http.MethodPost, "/api/ustadz/scores", `{"student_id":"`+sid+`","adab":80,"disiplin":90,"setoran":100}`, bearer(ali))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	out := dataMap(t, env)
	aliScore, _ := out["score"].(map[string]any)
	aliScoreID, _ := aliScore["id"].(string)
	require.NotEmpty(t, aliScoreID)
	assert.Equal(t, h.profileID(t, "ali@pesantren.id"), aliScore["ustadz_id"])
	standing, _ := out["student"].(map[string]any)
	assert.EqualValues(t, 90, standing["average_score"])
	assert.Equal(t, constants.StatusMutqin, standing["status"])

	resp, env = h.do(t, http.MethodPost, "/api/ustadz/scores", `{"student_id":"`+sid+`","adab":60,"disiplin":60,"setoran":60}`, bearer(umar))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	out = dataMap(t, env)
	umarScore, _ := out["score"].(map[string]any)
	umarScoreID, _ := umarScore["id"].(string)
	standing, _ = out["student"].(map[string]any)
	assert.EqualValues(t, 75, standing["average_score"])
	assert.Equal(t, constants.StatusMutawassith, standing["status"])

	resp, _ = h.do(t, http.MethodPost, "/api/ustadz/scores", `{"student_id":"`+sid+`","adab":101,"disiplin":60,"setoran":60}`, bearer(ali))
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	resp, env = h.do(t, http.MethodGet, "/api/ustadz/scores?mine=true", "", bearer(ali))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	mine := dataList(t, env)
	require.Len(t, mine, 1)
	assert.Equal(t, aliScoreID, mine[0]["id"])

	resp, env = h.do(t, http.MethodGet, "/api/ustadz/scores", "", bearer(ali))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, dataList(t, env), 2)

	// ustadz lain tidak boleh menghapus
	resp, _ = h.do(t, http.MethodDelete, "/api/ustadz/scores/"+aliScoreID, "", bearer(umar))
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, env = h.do(t, http.MethodDelete, "/api/ustadz/scores/"+aliScoreID, "", bearer(ali))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	standing, _ = dataMap(t, env)["student"].(map[string]any)
	assert.EqualValues(t, 60, standing["average_score"])
	assert.Equal(t, constants.StatusDhaif, standing["status"])

	var got sModel.StudentModel
	require.NoError(t, h.db.First(&got, "id = ?", st.ID).Error)
	assert.InDelta(t, 60, got.AverageScore, 0.001)
	assert.Equal(t, constants.StatusDhaif, got.Status)

	resp, env = h.do(t, http.MethodGet, "/api/admin/scores?student_id="+sid, "", bearer(admin))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, dataList(t, env), 1)

	// super_admin boleh menghapus nilai siapa pun
	resp, env = h.do(t, http.MethodDelete, "/api/ustadz/scores/"+umarScoreID, "", bearer(super))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	standing, _ = dataMap(t, env)["student"].(map[string]any)
	assert.EqualValues(t, 0, standing["average_score"])

	resp, _ = h.do(t, http.MethodDelete, "/api/ustadz/scores/"+umarScoreID, "", bearer(super))
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
