package grpc

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/sailakshmi-repaka/LoanShield/internal/application/dto"
	"github.com/sailakshmi-repaka/LoanShield/internal/application/usecase"
	"github.com/sailakshmi-repaka/LoanShield/internal/domain/model"
	"github.com/sailakshmi-repaka/LoanShield/internal/domain/port"
	"github.com/sailakshmi-repaka/LoanShield/pkg/auth"
)

// requireRole checks that the caller has at least one of the given roles.
func requireRole(ctx context.Context, roles ...string) error {
	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		return status.Error(codes.Unauthenticated, "authentication required")
	}
	for _, role := range roles {
		if claims.HasRole(role) {
			return nil
		}
	}
	return status.Error(codes.PermissionDenied, "insufficient permissions")
}

// callerName returns the display name of the authenticated caller, or "" for
// anonymous callers.
func callerName(ctx context.Context) string {
	if claims, ok := auth.ClaimsFromContext(ctx); ok {
		return claims.Name
	}
	return ""
}

// Compile-time assertion that TrustServiceHandler implements TrustServiceServer.
var _ TrustServiceServer = (*TrustServiceHandler)(nil)

// TrustServiceHandler implements the gRPC TrustServiceServer interface.
type TrustServiceHandler struct {
	UnimplementedTrustServiceServer
	checkApp         *usecase.CheckApp
	submitReport     *usecase.SubmitReport
	getAppReports    *usecase.GetAppReports
	registerUser     *usecase.RegisterUser
	authenticateUser *usecase.AuthenticateUser
	logger           *slog.Logger
}

// NewTrustServiceHandler creates a new gRPC handler.
func NewTrustServiceHandler(
	checkApp *usecase.CheckApp,
	submitReport *usecase.SubmitReport,
	getAppReports *usecase.GetAppReports,
	registerUser *usecase.RegisterUser,
	authenticateUser *usecase.AuthenticateUser,
	logger *slog.Logger,
) *TrustServiceHandler {
	return &TrustServiceHandler{
		checkApp:         checkApp,
		submitReport:     submitReport,
		getAppReports:    getAppReports,
		registerUser:     registerUser,
		authenticateUser: authenticateUser,
		logger:           logger,
	}
}

// Proto-aligned request/response message types.

// CheckAppRequest represents the proto CheckAppRequest message.
type CheckAppRequest struct {
	Query string `json:"query"`
}

// AssessmentMsg represents the proto Assessment message.
type AssessmentMsg struct {
	ID              string `json:"id"`
	Query           string `json:"query"`
	Title           string `json:"title"`
	AppID           string `json:"app_id"`
	Rating          string `json:"rating"`
	Installs        string `json:"installs"`
	ReviewCount     int32  `json:"review_count"`
	Registered      bool   `json:"registered"`
	LenderName      string `json:"lender_name"`
	LenderType      string `json:"lender_type"`
	Sentiment       string `json:"sentiment"`
	PermissionRisk  string `json:"permission_risk"`
	ReviewSummary   string `json:"review_summary"`
	ReportCount     int32  `json:"report_count"`
	AlreadyReported bool   `json:"already_reported"`
	Verdict         string `json:"verdict"`
	Reason          string `json:"reason"`
}

// CheckAppResponse represents the proto CheckAppResponse message.
type CheckAppResponse struct {
	Assessment *AssessmentMsg `json:"assessment"`
}

// SubmitReportRequest represents the proto SubmitReportRequest message.
type SubmitReportRequest struct {
	AppTitle string `json:"app_title"`
	Reason   string `json:"reason"`
}

// ReportMsg represents the proto Report message.
type ReportMsg struct {
	ID       string `json:"id"`
	Reporter string `json:"reporter"`
	AppTitle string `json:"app_title"`
	Reason   string `json:"reason"`
}

// SubmitReportResponse represents the proto SubmitReportResponse message.
type SubmitReportResponse struct {
	Report *ReportMsg `json:"report"`
}

// GetAppReportsRequest represents the proto GetAppReportsRequest message.
type GetAppReportsRequest struct {
	AppTitle string `json:"app_title"`
}

// GetAppReportsResponse represents the proto GetAppReportsResponse message.
type GetAppReportsResponse struct {
	Reports []*ReportMsg `json:"reports"`
}

// RegisterUserRequest represents the proto RegisterUserRequest message.
type RegisterUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserMsg represents the proto User message.
type UserMsg struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RegisterUserResponse represents the proto RegisterUserResponse message.
type RegisterUserResponse struct {
	User *UserMsg `json:"user"`
}

// LoginRequest represents the proto LoginRequest message.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse represents the proto LoginResponse message.
type LoginResponse struct {
	User  *UserMsg `json:"user"`
	Token string   `json:"token"`
}

// CheckApp handles a trust-check request. Anonymous callers are allowed;
// authenticated callers additionally get the already-reported caveat.
func (h *TrustServiceHandler) CheckApp(ctx context.Context, req *CheckAppRequest) (*CheckAppResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	h.logger.Info("checking app", slog.String("query", req.Query))

	result, err := h.checkApp.Execute(ctx, dto.CheckAppRequest{
		Query:    req.Query,
		Reporter: callerName(ctx),
	})
	if err != nil {
		if errors.Is(err, model.ErrInvalidInput) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		h.logger.Error("failed to check app",
			slog.String("query", req.Query),
			slog.String("error", err.Error()),
		)
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &CheckAppResponse{Assessment: assessmentMsg(result)}, nil
}

// SubmitReport handles a community report submission. The reporter identity
// comes from the caller's token, never from the request body.
func (h *TrustServiceHandler) SubmitReport(ctx context.Context, req *SubmitReportRequest) (*SubmitReportResponse, error) {
	if err := requireRole(ctx, auth.RoleUser, auth.RoleAnalyst, auth.RoleAdmin); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.submitReport.Execute(ctx, dto.SubmitReportRequest{
		Reporter: callerName(ctx),
		AppTitle: req.AppTitle,
		Reason:   req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, port.ErrDuplicateReport):
			return nil, status.Error(codes.AlreadyExists, "you have already reported this app")
		case errors.Is(err, model.ErrInvalidInput):
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		h.logger.Error("failed to submit report",
			slog.String("app_title", req.AppTitle),
			slog.String("error", err.Error()),
		)
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &SubmitReportResponse{Report: reportMsg(result)}, nil
}

// GetAppReports lists the reports filed against one app title.
func (h *TrustServiceHandler) GetAppReports(ctx context.Context, req *GetAppReportsRequest) (*GetAppReportsResponse, error) {
	if err := requireRole(ctx, auth.RoleUser, auth.RoleAnalyst, auth.RoleAdmin); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	results, err := h.getAppReports.Execute(ctx, dto.GetAppReportsRequest{AppTitle: req.AppTitle})
	if err != nil {
		if errors.Is(err, model.ErrInvalidInput) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		return nil, status.Error(codes.Internal, "internal error")
	}

	reports := make([]*ReportMsg, 0, len(results))
	for _, r := range results {
		reports = append(reports, reportMsg(r))
	}
	return &GetAppReportsResponse{Reports: reports}, nil
}

// RegisterUser handles account creation.
func (h *TrustServiceHandler) RegisterUser(ctx context.Context, req *RegisterUserRequest) (*RegisterUserResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.registerUser.Execute(ctx, dto.RegisterUserRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, model.ErrInvalidInput) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		h.logger.Error("failed to register user", slog.String("error", err.Error()))
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &RegisterUserResponse{User: userMsg(result)}, nil
}

// Login handles authentication and token issuance.
func (h *TrustServiceHandler) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.authenticateUser.Execute(ctx, dto.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			return nil, status.Error(codes.Unauthenticated, "invalid email or password")
		}
		h.logger.Error("failed to authenticate user", slog.String("error", err.Error()))
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &LoginResponse{User: userMsg(result.User), Token: result.Token}, nil
}

func assessmentMsg(result dto.AssessmentResponse) *AssessmentMsg {
	return &AssessmentMsg{
		ID:              result.ID.String(),
		Query:           result.Query,
		Title:           result.Title,
		AppID:           result.AppID,
		Rating:          result.Rating,
		Installs:        result.Installs,
		ReviewCount:     int32(result.ReviewCount),
		Registered:      result.Registered,
		LenderName:      result.LenderName,
		LenderType:      result.LenderType,
		Sentiment:       result.Sentiment,
		PermissionRisk:  result.PermissionRisk,
		ReviewSummary:   result.ReviewSummary,
		ReportCount:     int32(result.ReportCount),
		AlreadyReported: result.AlreadyReported,
		Verdict:         result.Verdict,
		Reason:          result.Reason,
	}
}

func reportMsg(result dto.ReportResponse) *ReportMsg {
	return &ReportMsg{
		ID:       result.ID.String(),
		Reporter: result.Reporter,
		AppTitle: result.AppTitle,
		Reason:   result.Reason,
	}
}

func userMsg(result dto.UserResponse) *UserMsg {
	return &UserMsg{
		ID:    result.ID.String(),
		Name:  result.Name,
		Email: result.Email,
	}
}
