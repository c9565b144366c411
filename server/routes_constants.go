package server

// Auth routes
const (
	RouteAuthLogin   = "/admin/auth/login"
	RouteAuthRefresh = "/admin/auth/refresh"
	RouteAuthLogout  = "/admin/auth/logout"
	RouteAuthMe      = "/admin/auth/me"
)

// Collection and detail routes
const (
	RouteAdmins    = "/admin/admins"
	RouteAdminByID = "/admin/admins/{id}"

	RouteMembers    = "/admin/users"
	RouteMemberByID = "/admin/users/{id}"

	RouteProducts      = "/admin/products"
	RouteProductByID   = "/admin/products/{id}"
	RouteProductStatus = "/admin/products/status"

	RouteBrands    = "/admin/brands"
	RouteBrandByID = "/admin/brands/{id}"

	RouteOrders    = "/admin/orders"
	RouteOrderByID = "/admin/orders/{id}"

	RouteRentals    = "/admin/rentals"
	RouteRentalByID = "/admin/rentals/{id}"

	RouteTickets    = "/admin/tickets"
	RouteTicketByID = "/admin/tickets/{id}"

	RouteNotices    = "/admin/notices"
	RouteNoticeByID = "/admin/notices/{id}"

	RouteTerms    = "/admin/terms"
	RouteTermByID = "/admin/terms/{id}"

	RouteFAQs    = "/admin/faqs"
	RouteFAQByID = "/admin/faqs/{id}"

	RouteSizeGuides          = "/admin/size-guides"
	RouteSizeGuideByCategory = "/admin/size-guides/{category}"
)
