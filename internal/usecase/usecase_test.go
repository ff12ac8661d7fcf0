package usecase

import (
	"io"
	"testing"

	"medimarket/internal/domain/entity"
	"medimarket/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB wires gorm over sqlmock so usecase transactions can assert
// begin/commit/rollback without a real database.
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

// testDeps bundles the sqlmock handle so per-usecase constructors stay short.
type testDeps struct {
	mock sqlmock.Sqlmock
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return client, mr
}

// Fake repositories. They ignore the *gorm.DB handle; transaction behavior
// is asserted through sqlmock expectations on the usecase's own db.

type fakeUserRepo struct {
	users     map[uuid.UUID]*entity.User
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*entity.User{}}
}

func (f *fakeUserRepo) Create(db *gorm.DB, user *entity.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Count(db *gorm.DB) (int64, error) {
	return int64(len(f.users)), nil
}

type fakeProfileRepo struct {
	profiles map[uuid.UUID]*entity.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[uuid.UUID]*entity.Profile{}}
}

func (f *fakeProfileRepo) Create(db *gorm.DB, profile *entity.Profile) error {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	f.profiles[profile.UserID] = profile
	return nil
}

func (f *fakeProfileRepo) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Profile, error) {
	return f.profiles[userID], nil
}

func (f *fakeProfileRepo) Update(db *gorm.DB, profile *entity.Profile) error {
	f.profiles[profile.UserID] = profile
	return nil
}

type fakeUserRoleRepo struct {
	roles []entity.UserRole
}

func newFakeUserRoleRepo() *fakeUserRoleRepo {
	return &fakeUserRoleRepo{}
}

func (f *fakeUserRoleRepo) Create(db *gorm.DB, role *entity.UserRole) error {
	if role.ID == uuid.Nil {
		role.ID = uuid.New()
	}
	f.roles = append(f.roles, *role)
	return nil
}

func (f *fakeUserRoleRepo) FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.UserRole, error) {
	var out []entity.UserRole
	for _, r := range f.roles {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeUserRoleRepo) HasRole(db *gorm.DB, userID uuid.UUID, role entity.AppRole) (bool, error) {
	for _, r := range f.roles {
		if r.UserID == userID && r.Role == role {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRoleRepo) countRole(userID uuid.UUID, role entity.AppRole) int {
	n := 0
	for _, r := range f.roles {
		if r.UserID == userID && r.Role == role {
			n++
		}
	}
	return n
}

type fakeHospitalAdminRepo struct {
	links []entity.HospitalAdmin
}

func newFakeHospitalAdminRepo() *fakeHospitalAdminRepo {
	return &fakeHospitalAdminRepo{}
}

func (f *fakeHospitalAdminRepo) Create(db *gorm.DB, link *entity.HospitalAdmin) error {
	if link.ID == uuid.Nil {
		link.ID = uuid.New()
	}
	f.links = append(f.links, *link)
	return nil
}

func (f *fakeHospitalAdminRepo) FindFirstByUserID(db *gorm.DB, userID uuid.UUID) (*entity.HospitalAdmin, error) {
	for _, l := range f.links {
		if l.UserID == userID {
			link := l
			return &link, nil
		}
	}
	return nil, nil
}

func (f *fakeHospitalAdminRepo) FindByUserAndHospital(db *gorm.DB, userID, hospitalID uuid.UUID) (*entity.HospitalAdmin, error) {
	for _, l := range f.links {
		if l.UserID == userID && l.HospitalID == hospitalID {
			link := l
			return &link, nil
		}
	}
	return nil, nil
}

type fakeHospitalRepo struct {
	hospitals map[uuid.UUID]*entity.Hospital
}

func newFakeHospitalRepo() *fakeHospitalRepo {
	return &fakeHospitalRepo{hospitals: map[uuid.UUID]*entity.Hospital{}}
}

func (f *fakeHospitalRepo) Create(db *gorm.DB, hospital *entity.Hospital) error {
	if hospital.ID == uuid.Nil {
		hospital.ID = uuid.New()
	}
	f.hospitals[hospital.ID] = hospital
	return nil
}

func (f *fakeHospitalRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Hospital, error) {
	return f.hospitals[id], nil
}

func (f *fakeHospitalRepo) SearchApproved(db *gorm.DB, filter *entity.HospitalFilter) ([]entity.Hospital, error) {
	var out []entity.Hospital
	for _, h := range f.hospitals {
		if h.Status == entity.HospitalStatusApproved {
			out = append(out, *h)
		}
	}
	return out, nil
}

func (f *fakeHospitalRepo) FindByStatus(db *gorm.DB, status entity.HospitalStatus) ([]entity.Hospital, error) {
	var out []entity.Hospital
	for _, h := range f.hospitals {
		if h.Status == status {
			out = append(out, *h)
		}
	}
	return out, nil
}

func (f *fakeHospitalRepo) FindByRegisteredBy(db *gorm.DB, userID uuid.UUID) ([]entity.Hospital, error) {
	var out []entity.Hospital
	for _, h := range f.hospitals {
		if h.RegisteredBy != nil && *h.RegisteredBy == userID {
			out = append(out, *h)
		}
	}
	return out, nil
}

func (f *fakeHospitalRepo) Approve(db *gorm.DB, id uuid.UUID, approvedBy uuid.UUID) (int64, error) {
	h, ok := f.hospitals[id]
	if !ok || h.Status != entity.HospitalStatusPending {
		return 0, nil
	}
	h.Status = entity.HospitalStatusApproved
	h.ApprovedBy = &approvedBy
	return 1, nil
}

func (f *fakeHospitalRepo) Reject(db *gorm.DB, id uuid.UUID, reason string) (int64, error) {
	h, ok := f.hospitals[id]
	if !ok || h.Status != entity.HospitalStatusPending {
		return 0, nil
	}
	h.Status = entity.HospitalStatusRejected
	h.RejectionReason = reason
	return 1, nil
}

func (f *fakeHospitalRepo) CountByStatus(db *gorm.DB, status entity.HospitalStatus) (int64, error) {
	hospitals, _ := f.FindByStatus(db, status)
	return int64(len(hospitals)), nil
}

type fakeDoctorRepo struct {
	doctors map[uuid.UUID]*entity.Doctor
}

func newFakeDoctorRepo() *fakeDoctorRepo {
	return &fakeDoctorRepo{doctors: map[uuid.UUID]*entity.Doctor{}}
}

func (f *fakeDoctorRepo) Create(db *gorm.DB, doctor *entity.Doctor) error {
	if doctor.ID == uuid.Nil {
		doctor.ID = uuid.New()
	}
	f.doctors[doctor.ID] = doctor
	return nil
}

func (f *fakeDoctorRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
	return f.doctors[id], nil
}

func (f *fakeDoctorRepo) FindByHospitalID(db *gorm.DB, hospitalID uuid.UUID, activeOnly bool) ([]entity.Doctor, error) {
	var out []entity.Doctor
	for _, d := range f.doctors {
		if d.HospitalID != hospitalID {
			continue
		}
		if activeOnly && !d.IsActive {
			continue
		}
		out = append(out, *d)
	}
	return out, nil
}

func (f *fakeDoctorRepo) Update(db *gorm.DB, doctor *entity.Doctor) error {
	f.doctors[doctor.ID] = doctor
	return nil
}

func (f *fakeDoctorRepo) Deactivate(db *gorm.DB, id uuid.UUID) (int64, error) {
	d, ok := f.doctors[id]
	if !ok {
		return 0, nil
	}
	d.IsActive = false
	return 1, nil
}

func (f *fakeDoctorRepo) CountActiveByHospital(db *gorm.DB, hospitalID uuid.UUID) (int64, error) {
	doctors, _ := f.FindByHospitalID(db, hospitalID, true)
	return int64(len(doctors)), nil
}

type fakeAppointmentRepo struct {
	appointments map[uuid.UUID]*entity.Appointment
	createErr    error
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: map[uuid.UUID]*entity.Appointment{}}
}

func (f *fakeAppointmentRepo) Create(db *gorm.DB, appointment *entity.Appointment) error {
	if f.createErr != nil {
		return f.createErr
	}
	if appointment.ID == uuid.Nil {
		appointment.ID = uuid.New()
	}
	f.appointments[appointment.ID] = appointment
	return nil
}

func (f *fakeAppointmentRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	return f.appointments[id], nil
}

func (f *fakeAppointmentRepo) FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Appointment, error) {
	var out []entity.Appointment
	for _, a := range f.appointments {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) FindByHospitalID(db *gorm.DB, hospitalID uuid.UUID, status entity.AppointmentStatus) ([]entity.Appointment, error) {
	var out []entity.Appointment
	for _, a := range f.appointments {
		if a.HospitalID != hospitalID {
			continue
		}
		if status != "" && a.Status != status {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeAppointmentRepo) TransitionStatus(db *gorm.DB, id uuid.UUID, from []entity.AppointmentStatus, to entity.AppointmentStatus, updates map[string]interface{}) (int64, error) {
	a, ok := f.appointments[id]
	if !ok {
		return 0, nil
	}
	allowed := false
	for _, s := range from {
		if a.Status == s {
			allowed = true
			break
		}
	}
	if !allowed {
		return 0, nil
	}
	a.Status = to
	if v, ok := updates["assigned_time"]; ok {
		a.AssignedTime = v.(string)
	}
	if v, ok := updates["admin_notes"]; ok {
		a.AdminNotes = v.(string)
	}
	return 1, nil
}

func (f *fakeAppointmentRepo) CountByHospitalAndStatus(db *gorm.DB, hospitalID uuid.UUID, status entity.AppointmentStatus) (int64, error) {
	appointments, _ := f.FindByHospitalID(db, hospitalID, status)
	return int64(len(appointments)), nil
}

func (f *fakeAppointmentRepo) Count(db *gorm.DB) (int64, error) {
	return int64(len(f.appointments)), nil
}

type fakeInsurancePlanRepo struct {
	plans map[uuid.UUID]*entity.InsurancePlan
}

func newFakeInsurancePlanRepo() *fakeInsurancePlanRepo {
	return &fakeInsurancePlanRepo{plans: map[uuid.UUID]*entity.InsurancePlan{}}
}

func (f *fakeInsurancePlanRepo) Create(db *gorm.DB, plan *entity.InsurancePlan) error {
	if plan.ID == uuid.Nil {
		plan.ID = uuid.New()
	}
	f.plans[plan.ID] = plan
	return nil
}

func (f *fakeInsurancePlanRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.InsurancePlan, error) {
	return f.plans[id], nil
}

func (f *fakeInsurancePlanRepo) FindApproved(db *gorm.DB) ([]entity.InsurancePlan, error) {
	var out []entity.InsurancePlan
	for _, p := range f.plans {
		if p.IsApproved {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeInsurancePlanRepo) FindPending(db *gorm.DB) ([]entity.InsurancePlan, error) {
	var out []entity.InsurancePlan
	for _, p := range f.plans {
		if !p.IsApproved {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeInsurancePlanRepo) FindByUploader(db *gorm.DB, userID uuid.UUID) ([]entity.InsurancePlan, error) {
	var out []entity.InsurancePlan
	for _, p := range f.plans {
		if p.UploadedBy != nil && *p.UploadedBy == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeInsurancePlanRepo) SetApproval(db *gorm.DB, id uuid.UUID, approved bool, approvedBy *uuid.UUID) (int64, error) {
	p, ok := f.plans[id]
	if !ok || p.IsApproved == approved {
		return 0, nil
	}
	p.IsApproved = approved
	p.ApprovedBy = approvedBy
	return 1, nil
}

func (f *fakeInsurancePlanRepo) CountPending(db *gorm.DB) (int64, error) {
	plans, _ := f.FindPending(db)
	return int64(len(plans)), nil
}

type fakeHospitalInsuranceRepo struct {
	links []entity.HospitalInsurance
	plans *fakeInsurancePlanRepo
}

func newFakeHospitalInsuranceRepo(plans *fakeInsurancePlanRepo) *fakeHospitalInsuranceRepo {
	return &fakeHospitalInsuranceRepo{plans: plans}
}

func (f *fakeHospitalInsuranceRepo) Create(db *gorm.DB, link *entity.HospitalInsurance) error {
	if link.ID == uuid.Nil {
		link.ID = uuid.New()
	}
	f.links = append(f.links, *link)
	return nil
}

func (f *fakeHospitalInsuranceRepo) Delete(db *gorm.DB, hospitalID, planID uuid.UUID) (int64, error) {
	for i, l := range f.links {
		if l.HospitalID == hospitalID && l.InsurancePlanID == planID {
			f.links = append(f.links[:i], f.links[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeHospitalInsuranceRepo) Exists(db *gorm.DB, hospitalID, planID uuid.UUID) (bool, error) {
	for _, l := range f.links {
		if l.HospitalID == hospitalID && l.InsurancePlanID == planID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeHospitalInsuranceRepo) FindApprovedPlansByHospital(db *gorm.DB, hospitalID uuid.UUID) ([]entity.InsurancePlan, error) {
	var out []entity.InsurancePlan
	for _, l := range f.links {
		if l.HospitalID != hospitalID {
			continue
		}
		if p, ok := f.plans.plans[l.InsurancePlanID]; ok && p.IsApproved {
			out = append(out, *p)
		}
	}
	return out, nil
}

type fakeBookingFormFieldRepo struct {
	fields map[uuid.UUID][]entity.BookingFormField
}

func newFakeBookingFormFieldRepo() *fakeBookingFormFieldRepo {
	return &fakeBookingFormFieldRepo{fields: map[uuid.UUID][]entity.BookingFormField{}}
}

func (f *fakeBookingFormFieldRepo) FindByHospitalID(db *gorm.DB, hospitalID uuid.UUID) ([]entity.BookingFormField, error) {
	return f.fields[hospitalID], nil
}

func (f *fakeBookingFormFieldRepo) DeleteByHospitalID(db *gorm.DB, hospitalID uuid.UUID) error {
	delete(f.fields, hospitalID)
	return nil
}

func (f *fakeBookingFormFieldRepo) CreateBatch(db *gorm.DB, fields []entity.BookingFormField) error {
	if len(fields) == 0 {
		return nil
	}
	hospitalID := fields[0].HospitalID
	f.fields[hospitalID] = append(f.fields[hospitalID], fields...)
	return nil
}

func (f *fakeBookingFormFieldRepo) CountByHospitalID(db *gorm.DB, hospitalID uuid.UUID) (int64, error) {
	return int64(len(f.fields[hospitalID])), nil
}

type fakeAuditLogRepo struct {
	logs []entity.AuditLog
}

func newFakeAuditLogRepo() *fakeAuditLogRepo {
	return &fakeAuditLogRepo{}
}

func (f *fakeAuditLogRepo) Create(db *gorm.DB, log *entity.AuditLog) error {
	log.ID = int64(len(f.logs) + 1)
	f.logs = append(f.logs, *log)
	return nil
}

func (f *fakeAuditLogRepo) FindAll(db *gorm.DB) ([]entity.AuditLog, error) {
	return f.logs, nil
}

func (f *fakeAuditLogRepo) FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error) {
	for _, l := range f.logs {
		if l.ID == id {
			log := l
			return &log, nil
		}
	}
	return nil, nil
}

func (f *fakeAuditLogRepo) actions() []string {
	out := make([]string, len(f.logs))
	for i, l := range f.logs {
		out[i] = l.Action
	}
	return out
}

func newTestAuditService(db *gorm.DB, auditRepo *fakeAuditLogRepo) service.AuditService {
	return service.NewAuditService(db, newTestLogger(), auditRepo)
}
