package authapimodels

import (
	"time"
	"worktrack-backend/models"
	dbmodels "worktrack-backend/models/db"
	"worktrack-backend/models/errs"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if r.Email == "" {
		return errs.Validationf("не указана почта")
	}
	if r.Password == "" {
		return errs.Validationf("не указан пароль")
	}
	return nil
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  ProfileView `json:"user"`
}

type ProfileView struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Role       models.UserRole `json:"role"`
	RoleName   string          `json:"role_name"`
	Department string          `json:"department,omitempty"`
	EmployeeID string          `json:"employee_id,omitempty"`
}

func ProfileConvert(rec dbmodels.User) ProfileView {
	view := ProfileView{
		ID:         rec.ID,
		Name:       rec.Name,
		Email:      rec.Email,
		Role:       rec.GetRole(),
		RoleName:   rec.GetRole().ToHuman(),
		Department: rec.Department,
	}
	if rec.EmployeeID != nil {
		view.EmployeeID = *rec.EmployeeID
	}
	return view
}

type ProfileUpdateData struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (d ProfileUpdateData) Validate() error {
	if d.Name == "" && d.Password == "" {
		return errs.Validationf("нет данных для обновления")
	}
	return nil
}

type LoginHistoryView struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	IP        string `json:"ip,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
	Success   bool   `json:"success"`
	Timestamp string `json:"timestamp"`
}

func LoginHistoryConvert(rec dbmodels.LoginHistory) LoginHistoryView {
	return LoginHistoryView{
		ID:        rec.ID,
		Email:     rec.Email,
		IP:        rec.IP,
		UserAgent: rec.UserAgent,
		Success:   rec.Success,
		Timestamp: rec.CreatedAt.Format(time.RFC3339),
	}
}
