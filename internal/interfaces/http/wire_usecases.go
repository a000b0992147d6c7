package http

import (
	adminUsecases "skylink/internal/application/admin/usecases"
	"skylink/internal/application/analytics"
	"skylink/internal/application/common"
	complaintUsecases "skylink/internal/application/complaint/usecases"
	"skylink/internal/application/help"
	subscriptionUsecases "skylink/internal/application/subscription/usecases"
	userUsecases "skylink/internal/application/user/usecases"
	"skylink/internal/infrastructure/backend"
	"skylink/internal/shared/inflight"
	"skylink/internal/shared/logger"
	"skylink/internal/shared/services/markdown"
)

// UseCases holds every portal use case. The CLI shares it with the HTTP
// server.
type UseCases struct {
	// Auth
	Login   *userUsecases.LoginWithPasswordUseCase
	Signup  *userUsecases.RegisterWithPasswordUseCase
	Logout  *userUsecases.LogoutUseCase
	Profile *userUsecases.GetProfileUseCase

	// Customer dashboard
	CustomerOverview *subscriptionUsecases.GetCustomerOverviewUseCase
	AvailablePlans   *subscriptionUsecases.ListAvailablePlansUseCase
	PlanDetails      *subscriptionUsecases.GetPlanDetailsUseCase
	Subscribe        *subscriptionUsecases.SubscribeUseCase
	MyComplaints     *complaintUsecases.ListMyComplaintsUseCase
	SubmitComplaint  *complaintUsecases.SubmitComplaintUseCase
	FAQ              *help.GetFAQUseCase

	// Admin dashboard
	AdminOverview    *adminUsecases.GetAdminOverviewUseCase
	Customers        *adminUsecases.ListCustomersUseCase
	Complaints       *adminUsecases.ListComplaintsUseCase
	ResolveComplaint *adminUsecases.ResolveComplaintUseCase
	Plans            *adminUsecases.ManagePlansUseCase
}

// UseCaseDeps are the collaborators NewUseCases binds the use cases to.
type UseCaseDeps struct {
	Client      *backend.Client
	RecentLimit int
	Logger      logger.Interface
}

// NewUseCases wires every use case to the backend client. One in-flight
// guard is shared so a resolve and a subscribe never collide on keys.
func NewUseCases(deps UseCaseDeps) *UseCases {
	log := deps.Logger
	client := deps.Client
	guard := inflight.NewGuard()
	md := markdown.NewMarkdownService()
	aggregator := analytics.NewAggregator(deps.RecentLimit, log.Named("analytics"))

	var (
		adminAPI     common.Bind[adminUsecases.AdminAPI]                 = func(token string) adminUsecases.AdminAPI { return client.WithToken(token) }
		customerAPI  common.Bind[subscriptionUsecases.CustomerAPI]       = func(token string) subscriptionUsecases.CustomerAPI { return client.WithToken(token) }
		complaintAPI common.Bind[complaintUsecases.CustomerComplaintAPI] = func(token string) complaintUsecases.CustomerComplaintAPI { return client.WithToken(token) }
		profileAPI   common.Bind[userUsecases.ProfileAPI]                = func(token string) userUsecases.ProfileAPI { return client.WithToken(token) }
	)

	return &UseCases{
		Login:   userUsecases.NewLoginWithPasswordUseCase(client, log),
		Signup:  userUsecases.NewRegisterWithPasswordUseCase(client, log),
		Logout:  userUsecases.NewLogoutUseCase(log),
		Profile: userUsecases.NewGetProfileUseCase(profileAPI, log),

		CustomerOverview: subscriptionUsecases.NewGetCustomerOverviewUseCase(customerAPI, log),
		AvailablePlans:   subscriptionUsecases.NewListAvailablePlansUseCase(customerAPI, log),
		PlanDetails:      subscriptionUsecases.NewGetPlanDetailsUseCase(customerAPI, log),
		Subscribe:        subscriptionUsecases.NewSubscribeUseCase(customerAPI, guard, log),
		MyComplaints:     complaintUsecases.NewListMyComplaintsUseCase(complaintAPI, log),
		SubmitComplaint:  complaintUsecases.NewSubmitComplaintUseCase(complaintAPI, md, log),
		FAQ:              help.NewGetFAQUseCase(md, log),

		AdminOverview:    adminUsecases.NewGetAdminOverviewUseCase(adminAPI, aggregator, log),
		Customers:        adminUsecases.NewListCustomersUseCase(adminAPI, log),
		Complaints:       adminUsecases.NewListComplaintsUseCase(adminAPI, log),
		ResolveComplaint: adminUsecases.NewResolveComplaintUseCase(adminAPI, guard, log),
		Plans:            adminUsecases.NewManagePlansUseCase(adminAPI, log),
	}
}
