package routes

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/c14220110/clinic-portal/internal/apiclient"
	authControllers "github.com/c14220110/clinic-portal/internal/auth/controllers"
	authServices "github.com/c14220110/clinic-portal/internal/auth/services"
	billingControllers "github.com/c14220110/clinic-portal/internal/billing/controllers"
	billingServices "github.com/c14220110/clinic-portal/internal/billing/services"
	"github.com/c14220110/clinic-portal/internal/common/guard"
	"github.com/c14220110/clinic-portal/internal/common/middlewares"
	patientControllers "github.com/c14220110/clinic-portal/internal/patient/controllers"
	patientServices "github.com/c14220110/clinic-portal/internal/patient/services"
	pharmacyControllers "github.com/c14220110/clinic-portal/internal/pharmacy/controllers"
	pharmacyServices "github.com/c14220110/clinic-portal/internal/pharmacy/services"
	roomControllers "github.com/c14220110/clinic-portal/internal/rooms/controllers"
	roomServices "github.com/c14220110/clinic-portal/internal/rooms/services"
	staffControllers "github.com/c14220110/clinic-portal/internal/staff/controllers"
	staffServices "github.com/c14220110/clinic-portal/internal/staff/services"
	"github.com/c14220110/clinic-portal/ws"
)

// Deps kebutuhan bersama semua route.
type Deps struct {
	API    *apiclient.Client
	Logger *zap.Logger
	Hub    *ws.Hub

	WSBaseURL          string
	LoginRatePerMinute int
}

// Init menginisialisasi semua routes menggunakan Echo framework
func Init(e *echo.Echo, d Deps) {
	log := d.Logger

	// Inisialisasi service
	authService := authServices.NewAuthService(d.API, log)
	patientService := patientServices.NewPatientService(d.API, log)
	walletService := patientServices.NewWalletService(d.API, log)
	staffService := staffServices.NewStaffService(d.API, log)
	consultationService := staffServices.NewConsultationService(d.API, log)
	scheduleService := staffServices.NewScheduleService(d.API, log)
	adminService := staffServices.NewAdminService(d.API, log)
	labService := staffServices.NewLabService(d.API, log)
	billingService := billingServices.NewBillingService(d.API, log)
	pharmacyService := pharmacyServices.NewPharmacyService(d.API, log)
	roomService := roomServices.NewRoomService(d.API, log)

	// Inisialisasi controller dengan service yang sesuai
	authController := authControllers.NewAuthController(authService)
	patientController := patientControllers.NewPatientController(patientService)
	walletController := patientControllers.NewWalletController(walletService)
	staffController := staffControllers.NewStaffController(staffService)
	consultationController := staffControllers.NewConsultationController(consultationService)
	scheduleController := staffControllers.NewScheduleController(scheduleService)
	adminController := staffControllers.NewAdminController(adminService)
	labController := staffControllers.NewLabController(labService)
	billingController := billingControllers.NewBillingController(billingService)
	pharmacyController := pharmacyControllers.NewPharmacyController(pharmacyService)
	roomController := roomControllers.NewRoomController(roomService)

	// **Publik** (tidak pakai guard)
	loginLimiter := middlewares.NewRateLimiter(d.LoginRatePerMinute, 5*time.Minute)
	e.GET("/healthz", authController.Healthz)
	e.GET("/login", authController.LoginPage)
	e.POST("/login", authController.Login, loginLimiter.Middleware())
	e.POST("/logout", authController.Logout)
	e.POST("/register", authController.Register)

	// **Area Pasien**
	patient := e.Group("/dashboard/patient", middlewares.RouteGuard(log, guard.PatientRoles...))
	patient.GET("", patientController.Dashboard)
	patient.GET("/appointments", patientController.Appointments)
	patient.POST("/appointments", patientController.BookAppointment)
	patient.GET("/records", patientController.Records)
	patient.GET("/records/visits", patientController.Visits)
	patient.GET("/records/prescriptions", patientController.Prescriptions)
	patient.GET("/records/labs", patientController.Labs)
	patient.GET("/records/:id", patientController.Consultation)
	patient.GET("/vitals", patientController.Vitals)
	patient.GET("/wallet", walletController.Wallet)
	patient.POST("/wallet/invoices/:id/pay", walletController.PayInvoice)
	patient.POST("/wallet/topup", walletController.Topup)
	patient.GET("/messages", patientController.Messages)

	// **Area Staf**
	staff := e.Group("/dashboard", middlewares.RouteGuard(log, guard.StaffRoles...))
	staff.GET("", staffController.Dashboard)
	staff.GET("/overview", staffController.Overview)
	staff.GET("/patients", staffController.Patients)
	staff.GET("/records", staffController.Records)
	staff.POST("/records", staffController.CreateRecord)
	staff.GET("/records/:id", staffController.Record)
	staff.GET("/doctor", staffController.Doctor)
	staff.GET("/nurse", staffController.Nurse)
	staff.POST("/nurse/vitals", staffController.RecordVitals)

	staff.GET("/consultations", consultationController.Queue)
	staff.GET("/consultations/:id", consultationController.Detail)
	staff.POST("/consultations/:id", consultationController.Complete)

	staff.GET("/schedule/appointments", scheduleController.Appointments)
	staff.POST("/schedule/appointments", scheduleController.Create)
	staff.PUT("/schedule/appointments/:id", scheduleController.Update)

	staff.GET("/rooms", roomController.Rooms)
	staff.POST("/rooms", roomController.CreateBed)
	staff.POST("/rooms/:id/admit", roomController.Admit)
	staff.POST("/rooms/:id/discharge", roomController.Discharge)

	staff.GET("/referrals", staffController.Referrals)
	staff.POST("/referrals", staffController.CreateReferral)
	staff.POST("/referrals/:id/accept", staffController.AcceptReferral)
	staff.POST("/referrals/:id/reject", staffController.RejectReferral)

	staff.GET("/attendance", staffController.Attendance)
	staff.POST("/attendance/check-in", staffController.CheckIn)
	staff.POST("/attendance/check-out", staffController.CheckOut)

	// Sub-area dengan role lebih sempit
	admin := staff.Group("/admin", middlewares.RequireRole(guard.AdminRoles...))
	admin.GET("", adminController.Overview)
	admin.POST("/users", adminController.CreateUser)

	laboratory := staff.Group("/laboratory", middlewares.RequireRole(guard.LaboratoryRoles...))
	laboratory.GET("", labController.Requests)
	laboratory.POST("", labController.Order)
	laboratory.PUT("/:id", labController.Record)

	pharmacy := staff.Group("/pharmacy", middlewares.RequireRole(guard.PharmacyRoles...))
	pharmacy.GET("", pharmacyController.Dashboard)
	pharmacy.GET("/inventory", pharmacyController.Inventory)
	pharmacy.GET("/prescriptions", pharmacyController.Prescriptions)
	pharmacy.GET("/prescriptions/:id", pharmacyController.Prescription)

	billing := staff.Group("/billing", middlewares.RequireRole(guard.BillingRoles...))
	billing.GET("", billingController.Billing)
	billing.POST("/invoices", billingController.CreateInvoice)
	billing.POST("/invoices/:id/pay", billingController.Pay)

	// **Realtime**
	realtime := e.Group("/ws", middlewares.RouteGuard(log, guard.AnyRole()...))
	realtime.GET("/notifications", ws.ServeNotifications(d.Hub, ws.NotificationsURL(d.WSBaseURL), log))
	realtime.GET("/consultations/:id", ws.ServeConsultationChat(d.Hub, d.WSBaseURL, chatIdentity, log))
}

func chatIdentity(c echo.Context) ws.ChatIdentity {
	sess := middlewares.CurrentSession(c)
	if sess == nil {
		return ws.ChatIdentity{Name: ws.UnknownSender}
	}
	return ws.IdentityFor(sess.UserID(), sess.User.DisplayName())
}
