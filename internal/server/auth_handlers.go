package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gstsuite/invoice-analyzer/internal/auth"
)

func (s *Server) showLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

func (s *Server) handleLogin(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	_, token, err := s.auth.Login(c.Request.Context(), email, password)
	if err != nil {
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"Error": "Invalid email or password.",
			"Email": email,
		})
		return
	}
	s.setSessionCookie(c, token)
	c.Redirect(http.StatusFound, "/invoices")
}

func (s *Server) showSignup(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", gin.H{})
}

func (s *Server) handleSignup(c *gin.Context) {
	req := auth.SignupRequest{
		Name:     c.PostForm("name"),
		Email:    c.PostForm("email"),
		Aadhaar:  c.PostForm("aadhaar"),
		Password: c.PostForm("password"),
		UserType: c.PostForm("user_type"),
	}
	user, err := s.auth.Signup(c.Request.Context(), req)
	if err != nil {
		c.HTML(http.StatusBadRequest, "signup.html", gin.H{
			"Error":   err.Error(),
			"Name":    req.Name,
			"Email":   req.Email,
			"Aadhaar": req.Aadhaar,
		})
		return
	}
	// sign the new account straight in
	token := s.auth.Sessions().Issue(user.ID)
	s.setSessionCookie(c, token)
	c.Redirect(http.StatusFound, "/invoices")
}

func (s *Server) handleLogout(c *gin.Context) {
	if token, err := c.Cookie(auth.SessionCookie); err == nil {
		s.auth.Logout(token)
	}
	c.SetCookie(auth.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}

func (s *Server) setSessionCookie(c *gin.Context, token string) {
	maxAge := int(s.auth.Sessions().TTL().Seconds())
	c.SetCookie(auth.SessionCookie, token, maxAge, "/", "", false, true)
}
