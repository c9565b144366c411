package server

import (
	"strconv"

	"github.com/me1pik/admin-backoffice/admins"
	"github.com/me1pik/admin-backoffice/catalog"
	"github.com/me1pik/admin-backoffice/members"
	"github.com/me1pik/admin-backoffice/orders"
	"github.com/me1pik/admin-backoffice/support"
)

func (s *Server) initRoutes() {
	api := s.APIMiddleware()
	protected := s.ProtectedMiddleware()

	// AUTH
	s.RegisterRouteHandler("POST "+RouteAuthLogin, ChainMiddleware(s.LoginHandler(), api...))
	s.RegisterRouteHandler("POST "+RouteAuthRefresh, ChainMiddleware(s.RefreshHandler(), api...))
	s.RegisterRouteHandler("POST "+RouteAuthLogout, ChainMiddleware(s.LogoutHandler(), protected...))
	s.RegisterRouteHandler("GET "+RouteAuthMe, ChainMiddleware(s.MeHandler(), protected...))

	// ADMIN ACCOUNTS
	s.RegisterRouteHandler("GET "+RouteAdmins, ChainMiddleware(listHandler(
		s.repos.Admins.List,
		func(a *admins.Admin) string { return string(a.Status) },
		func(a *admins.Admin) []string { return []string{a.Email, a.Name, a.Team, string(a.Role)} },
	), protected...))
	s.RegisterRouteHandler("POST "+RouteAdmins, ChainMiddleware(createHandler(s.repos.Admins.Upsert), protected...))
	s.RegisterRouteHandler("GET "+RouteAdminByID, ChainMiddleware(getHandler(s.repos.Admins.GetByID), protected...))
	s.RegisterRouteHandler("PATCH "+RouteAdminByID, ChainMiddleware(updateHandler(s.repos.Admins.GetByID, s.repos.Admins.Upsert), protected...))
	s.RegisterRouteHandler("DELETE "+RouteAdminByID, ChainMiddleware(deleteHandler(s.repos.Admins.Delete), protected...))

	// MEMBERS (platform users)
	s.RegisterRouteHandler("GET "+RouteMembers, ChainMiddleware(listHandler(
		s.repos.Members.List,
		func(m *members.Member) string { return string(m.Status) },
		func(m *members.Member) []string {
			return []string{m.Email, m.Name, m.Nickname, m.Instagram, m.Membership, string(m.Grade)}
		},
	), protected...))
	s.RegisterRouteHandler("GET "+RouteMemberByID, ChainMiddleware(getHandler(s.repos.Members.GetByID), protected...))
	s.RegisterRouteHandler("PATCH "+RouteMemberByID, ChainMiddleware(updateHandler(s.repos.Members.GetByID, s.repos.Members.Upsert), protected...))
	s.RegisterRouteHandler("DELETE "+RouteMemberByID, ChainMiddleware(deleteHandler(s.repos.Members.Delete), protected...))

	// PRODUCTS
	s.RegisterRouteHandler("GET "+RouteProducts, ChainMiddleware(listHandler(
		s.repos.Products.List,
		func(p *catalog.Product) string { return string(p.Status) },
		func(p *catalog.Product) []string {
			return []string{p.Name, p.ProductNo, p.BrandName, p.Category, p.Color}
		},
	), protected...))
	s.RegisterRouteHandler("POST "+RouteProducts, ChainMiddleware(createHandler(s.repos.Products.Upsert), protected...))
	s.RegisterRouteHandler("PATCH "+RouteProductStatus, ChainMiddleware(s.ProductBulkStatusHandler(), protected...))
	s.RegisterRouteHandler("GET "+RouteProductByID, ChainMiddleware(getHandler(s.repos.Products.GetByID), protected...))
	s.RegisterRouteHandler("PATCH "+RouteProductByID, ChainMiddleware(updateHandler(s.repos.Products.GetByID, s.repos.Products.Upsert), protected...))
	s.RegisterRouteHandler("DELETE "+RouteProductByID, ChainMiddleware(deleteHandler(s.repos.Products.Delete), protected...))

	// BRANDS
	s.RegisterRouteHandler("GET "+RouteBrands, ChainMiddleware(listHandler(
		s.repos.Brands.List,
		func(b *catalog.Brand) string { return string(b.Status) },
		func(b *catalog.Brand) []string { return []string{b.Name, b.Company, b.Manager, b.Phone} },
	), protected...))
	s.RegisterRouteHandler("POST "+RouteBrands, ChainMiddleware(createHandler(s.repos.Brands.Upsert), protected...))
	s.RegisterRouteHandler("GET "+RouteBrandByID, ChainMiddleware(getHandler(s.repos.Brands.GetByID), protected...))
	s.RegisterRouteHandler("PATCH "+RouteBrandByID, ChainMiddleware(updateHandler(s.repos.Brands.GetByID, s.repos.Brands.Upsert), protected...))
	s.RegisterRouteHandler("DELETE "+RouteBrandByID, ChainMiddleware(deleteHandler(s.repos.Brands.Delete), protected...))

	// ORDERS
	s.RegisterRouteHandler("GET "+RouteOrders, ChainMiddleware(listHandler(
		s.repos.Orders.List,
		func(o *orders.Order) string { return string(o.Status) },
		func(o *orders.Order) []string {
			return []string{o.OrderNo, o.MemberName, o.ProductName, o.BrandName, strconv.Itoa(o.Amount)}
		},
	), protected...))
	s.RegisterRouteHandler("GET "+RouteOrderByID, ChainMiddleware(getHandler(s.repos.Orders.GetByID), protected...))
	s.RegisterRouteHandler("PATCH "+RouteOrderByID, ChainMiddleware(updateHandler(s.repos.Orders.GetByID, s.repos.Orders.Upsert), protected...))
	s.RegisterRouteHandler("DELETE "+RouteOrderByID, ChainMiddleware(deleteHandler(s.repos.Orders.Delete), protected...))

	// RENTALS
	s.RegisterRouteHandler("GET "+RouteRentals, ChainMiddleware(listHandler(
		s.repos.Rentals.List,
		func(r *orders.Rental) string { return string(r.Status) },
		func(r *orders.Rental) []string {
			return []string{r.RentalNo, r.MemberName, r.ProductName, r.BrandName, r.SizeLabel}
		},
	), protected...))
	s.RegisterRouteHandler("GET "+RouteRentalByID, ChainMiddleware(getHandler(s.repos.Rentals.GetByID), protected...))
	s.RegisterRouteHandler("PATCH "+RouteRentalByID, ChainMiddleware(updateHandler(s.repos.Rentals.GetByID, s.repos.Rentals.Upsert), protected...))
	s.RegisterRouteHandler("DELETE "+RouteRentalByID, ChainMiddleware(deleteHandler(s.repos.Rentals.Delete), protected...))

	// TICKETS
	s.RegisterRouteHandler("GET "+RouteTickets, ChainMiddleware(listHandler(
		s.repos.Tickets.List,
		func(t *support.Ticket) string { return string(t.Status) },
		func(t *support.Ticket) []string { return []string{t.Title, t.MemberName, t.Category} },
	), protected...))
	s.RegisterRouteHandler("GET "+RouteTicketByID, ChainMiddleware(getHandler(s.repos.Tickets.GetByID), protected...))
	s.RegisterRouteHandler("PATCH "+RouteTicketByID, ChainMiddleware(updateHandler(s.repos.Tickets.GetByID, s.repos.Tickets.Upsert), protected...))
	s.RegisterRouteHandler("DELETE "+RouteTicketByID, ChainMiddleware(deleteHandler(s.repos.Tickets.Delete), protected...))

	// NOTICES
	s.RegisterRouteHandler("GET "+RouteNotices, ChainMiddleware(listHandler(
		s.repos.Notices.List,
		func(n *support.Notice) string { return string(n.Category) },
		func(n *support.Notice) []string { return []string{n.Title, n.Author} },
	), protected...))
	s.RegisterRouteHandler("POST "+RouteNotices, ChainMiddleware(createHandler(s.repos.Notices.Upsert), protected...))
	s.RegisterRouteHandler("GET "+RouteNoticeByID, ChainMiddleware(getHandler(s.repos.Notices.GetByID), protected...))
	s.RegisterRouteHandler("PATCH "+RouteNoticeByID, ChainMiddleware(updateHandler(s.repos.Notices.GetByID, s.repos.Notices.Upsert), protected...))
	s.RegisterRouteHandler("DELETE "+RouteNoticeByID, ChainMiddleware(deleteHandler(s.repos.Notices.Delete), protected...))

	// TERMS & POLICIES
	s.RegisterRouteHandler("GET "+RouteTerms, ChainMiddleware(listHandler(
		s.repos.Terms.List,
		func(t *support.Term) string { return string(t.Category) },
		func(t *support.Term) []string { return []string{t.Title, t.Version} },
	), protected...))
	s.RegisterRouteHandler("POST "+RouteTerms, ChainMiddleware(createHandler(s.repos.Terms.Upsert), protected...))
	s.RegisterRouteHandler("GET "+RouteTermByID, ChainMiddleware(getHandler(s.repos.Terms.GetByID), protected...))
	s.RegisterRouteHandler("PATCH "+RouteTermByID, ChainMiddleware(updateHandler(s.repos.Terms.GetByID, s.repos.Terms.Upsert), protected...))
	s.RegisterRouteHandler("DELETE "+RouteTermByID, ChainMiddleware(deleteHandler(s.repos.Terms.Delete), protected...))

	// FAQ
	s.RegisterRouteHandler("GET "+RouteFAQs, ChainMiddleware(listHandler(
		s.repos.FAQs.List,
		func(f *support.FAQ) string { return f.Category },
		func(f *support.FAQ) []string { return []string{f.Question, f.Category} },
	), protected...))
	s.RegisterRouteHandler("POST "+RouteFAQs, ChainMiddleware(createHandler(s.repos.FAQs.Upsert), protected...))
	s.RegisterRouteHandler("GET "+RouteFAQByID, ChainMiddleware(getHandler(s.repos.FAQs.GetByID), protected...))
	s.RegisterRouteHandler("PATCH "+RouteFAQByID, ChainMiddleware(updateHandler(s.repos.FAQs.GetByID, s.repos.FAQs.Upsert), protected...))
	s.RegisterRouteHandler("DELETE "+RouteFAQByID, ChainMiddleware(deleteHandler(s.repos.FAQs.Delete), protected...))

	// SIZE GUIDES
	s.RegisterRouteHandler("GET "+RouteSizeGuides, ChainMiddleware(s.SizeGuidesHandler(), protected...))
	s.RegisterRouteHandler("GET "+RouteSizeGuideByCategory, ChainMiddleware(s.SizeGuideHandler(), protected...))
}
