package handlers

import (
	"github.com/medconnect/medconnect-api/internal/config"
	"github.com/medconnect/medconnect-api/internal/payment"
	"github.com/medconnect/medconnect-api/internal/repo"
)

// Handler holds everything the route handlers need: one repository per
// collection and the payment gateway client. All route handlers are methods
// on this struct.
type Handler struct {
	Users        repo.UserStore
	Doctors      repo.DoctorStore
	Blogs        repo.BlogStore
	Appointments repo.AppointmentStore
	Gateway      payment.Gateway
	Cfg          config.Config
}

func NewHandler(store *repo.Store, gateway payment.Gateway, cfg config.Config) *Handler {
	return &Handler{
		Users:        repo.NewUserRepo(store),
		Doctors:      repo.NewDoctorRepo(store),
		Blogs:        repo.NewBlogRepo(store),
		Appointments: repo.NewAppointmentRepo(store),
		Gateway:      gateway,
		Cfg:          cfg,
	}
}
