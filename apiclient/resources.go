package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/me1pik/admin-backoffice/admins"
	"github.com/me1pik/admin-backoffice/catalog"
	"github.com/me1pik/admin-backoffice/credentials"
	"github.com/me1pik/admin-backoffice/members"
	"github.com/me1pik/admin-backoffice/orders"
	"github.com/me1pik/admin-backoffice/sizeguide"
	"github.com/me1pik/admin-backoffice/support"
)

// ListPage is the paged wire shape every collection endpoint returns.
type ListPage[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
	Page       int `json:"page"`
}

// ListParams are the shared collection query parameters. Zero values are
// omitted; the server applies its defaults.
type ListParams struct {
	Status string
	Search string
	Page   int
	Limit  int
}

func (p ListParams) encode() string {
	q := url.Values{}
	if p.Status != "" {
		q.Set("status", p.Status)
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if encoded := q.Encode(); encoded != "" {
		return "?" + encoded
	}
	return ""
}

type loginResponse struct {
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
	Admin        *admins.Admin `json:"admin"`
}

// Login authenticates and stores the returned token pair. A 401 here is
// final: the login path is exempt from the refresh flow.
func (c *Client) Login(ctx context.Context, email, password string) (*admins.Admin, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, c.loginPath, map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return nil, err
	}

	c.store.Set(credentials.KeyAccessToken, resp.AccessToken, credentials.WithTTL(credentials.AccessTokenTTL))
	c.store.Set(credentials.KeyRefreshToken, resp.RefreshToken)
	return resp.Admin, nil
}

// Logout revokes the stored refresh token and clears the credential store.
func (c *Client) Logout(ctx context.Context) error {
	refreshToken, _ := c.store.Get(credentials.KeyRefreshToken)
	err := c.do(ctx, http.MethodPost, "/admin/auth/logout", map[string]string{
		"refreshToken": refreshToken,
	}, nil)
	c.store.Clear()
	return err
}

// Me fetches the authenticated admin's own account.
func (c *Client) Me(ctx context.Context) (*admins.Admin, error) {
	return getResource[admins.Admin](ctx, c, "/admin/auth/me")
}

func listResource[T any](ctx context.Context, c *Client, path string, p ListParams) (*ListPage[T], error) {
	var page ListPage[T]
	if err := c.do(ctx, http.MethodGet, path+p.encode(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func getResource[T any](ctx context.Context, c *Client, path string) (*T, error) {
	out := new(T)
	if err := c.do(ctx, http.MethodGet, path, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

func createResource[T any](ctx context.Context, c *Client, path string, item *T) (*T, error) {
	out := new(T)
	if err := c.do(ctx, http.MethodPost, path, item, out); err != nil {
		return nil, err
	}
	return out, nil
}

func updateResource[T any](ctx context.Context, c *Client, path string, item any) (*T, error) {
	out := new(T)
	if err := c.do(ctx, http.MethodPatch, path, item, out); err != nil {
		return nil, err
	}
	return out, nil
}

func deleteResource(ctx context.Context, c *Client, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// ADMIN ACCOUNTS

func (c *Client) ListAdmins(ctx context.Context, p ListParams) (*ListPage[*admins.Admin], error) {
	return listResource[*admins.Admin](ctx, c, "/admin/admins", p)
}

func (c *Client) GetAdmin(ctx context.Context, id string) (*admins.Admin, error) {
	return getResource[admins.Admin](ctx, c, "/admin/admins/"+id)
}

func (c *Client) CreateAdmin(ctx context.Context, admin *admins.Admin) (*admins.Admin, error) {
	return createResource(ctx, c, "/admin/admins", admin)
}

func (c *Client) UpdateAdmin(ctx context.Context, id string, patch any) (*admins.Admin, error) {
	return updateResource[admins.Admin](ctx, c, "/admin/admins/"+id, patch)
}

func (c *Client) DeleteAdmin(ctx context.Context, id string) error {
	return deleteResource(ctx, c, "/admin/admins/"+id)
}

// MEMBERS

func (c *Client) ListMembers(ctx context.Context, p ListParams) (*ListPage[*members.Member], error) {
	return listResource[*members.Member](ctx, c, "/admin/users", p)
}

func (c *Client) GetMember(ctx context.Context, id string) (*members.Member, error) {
	return getResource[members.Member](ctx, c, "/admin/users/"+id)
}

func (c *Client) UpdateMember(ctx context.Context, id string, patch any) (*members.Member, error) {
	return updateResource[members.Member](ctx, c, "/admin/users/"+id, patch)
}

func (c *Client) DeleteMember(ctx context.Context, id string) error {
	return deleteResource(ctx, c, "/admin/users/"+id)
}

// PRODUCTS

func (c *Client) ListProducts(ctx context.Context, p ListParams) (*ListPage[*catalog.Product], error) {
	return listResource[*catalog.Product](ctx, c, "/admin/products", p)
}

func (c *Client) GetProduct(ctx context.Context, id string) (*catalog.Product, error) {
	return getResource[catalog.Product](ctx, c, "/admin/products/"+id)
}

func (c *Client) CreateProduct(ctx context.Context, product *catalog.Product) (*catalog.Product, error) {
	return createResource(ctx, c, "/admin/products", product)
}

func (c *Client) UpdateProduct(ctx context.Context, id string, patch any) (*catalog.Product, error) {
	return updateResource[catalog.Product](ctx, c, "/admin/products/"+id, patch)
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return deleteResource(ctx, c, "/admin/products/"+id)
}

// SetProductStatuses applies one registration status to a batch of products,
// typically the caller's filtered bulk selection.
func (c *Client) SetProductStatuses(ctx context.Context, ids []string, status catalog.RegistrationStatus) error {
	return c.do(ctx, http.MethodPatch, "/admin/products/status", map[string]any{
		"ids":    ids,
		"status": status,
	}, nil)
}

// BRANDS

func (c *Client) ListBrands(ctx context.Context, p ListParams) (*ListPage[*catalog.Brand], error) {
	return listResource[*catalog.Brand](ctx, c, "/admin/brands", p)
}

func (c *Client) GetBrand(ctx context.Context, id string) (*catalog.Brand, error) {
	return getResource[catalog.Brand](ctx, c, "/admin/brands/"+id)
}

func (c *Client) CreateBrand(ctx context.Context, brand *catalog.Brand) (*catalog.Brand, error) {
	return createResource(ctx, c, "/admin/brands", brand)
}

func (c *Client) UpdateBrand(ctx context.Context, id string, patch any) (*catalog.Brand, error) {
	return updateResource[catalog.Brand](ctx, c, "/admin/brands/"+id, patch)
}

func (c *Client) DeleteBrand(ctx context.Context, id string) error {
	return deleteResource(ctx, c, "/admin/brands/"+id)
}

// ORDERS

func (c *Client) ListOrders(ctx context.Context, p ListParams) (*ListPage[*orders.Order], error) {
	return listResource[*orders.Order](ctx, c, "/admin/orders", p)
}

func (c *Client) GetOrder(ctx context.Context, id string) (*orders.Order, error) {
	return getResource[orders.Order](ctx, c, "/admin/orders/"+id)
}

func (c *Client) UpdateOrder(ctx context.Context, id string, patch any) (*orders.Order, error) {
	return updateResource[orders.Order](ctx, c, "/admin/orders/"+id, patch)
}

// RENTALS

func (c *Client) ListRentals(ctx context.Context, p ListParams) (*ListPage[*orders.Rental], error) {
	return listResource[*orders.Rental](ctx, c, "/admin/rentals", p)
}

func (c *Client) GetRental(ctx context.Context, id string) (*orders.Rental, error) {
	return getResource[orders.Rental](ctx, c, "/admin/rentals/"+id)
}

func (c *Client) UpdateRental(ctx context.Context, id string, patch any) (*orders.Rental, error) {
	return updateResource[orders.Rental](ctx, c, "/admin/rentals/"+id, patch)
}

// TICKETS

func (c *Client) ListTickets(ctx context.Context, p ListParams) (*ListPage[*support.Ticket], error) {
	return listResource[*support.Ticket](ctx, c, "/admin/tickets", p)
}

func (c *Client) GetTicket(ctx context.Context, id string) (*support.Ticket, error) {
	return getResource[support.Ticket](ctx, c, "/admin/tickets/"+id)
}

func (c *Client) UpdateTicket(ctx context.Context, id string, patch any) (*support.Ticket, error) {
	return updateResource[support.Ticket](ctx, c, "/admin/tickets/"+id, patch)
}

// NOTICES

func (c *Client) ListNotices(ctx context.Context, p ListParams) (*ListPage[*support.Notice], error) {
	return listResource[*support.Notice](ctx, c, "/admin/notices", p)
}

func (c *Client) CreateNotice(ctx context.Context, notice *support.Notice) (*support.Notice, error) {
	return createResource(ctx, c, "/admin/notices", notice)
}

func (c *Client) UpdateNotice(ctx context.Context, id string, patch any) (*support.Notice, error) {
	return updateResource[support.Notice](ctx, c, "/admin/notices/"+id, patch)
}

func (c *Client) DeleteNotice(ctx context.Context, id string) error {
	return deleteResource(ctx, c, "/admin/notices/"+id)
}

// TERMS

func (c *Client) ListTerms(ctx context.Context, p ListParams) (*ListPage[*support.Term], error) {
	return listResource[*support.Term](ctx, c, "/admin/terms", p)
}

func (c *Client) CreateTerm(ctx context.Context, term *support.Term) (*support.Term, error) {
	return createResource(ctx, c, "/admin/terms", term)
}

func (c *Client) UpdateTerm(ctx context.Context, id string, patch any) (*support.Term, error) {
	return updateResource[support.Term](ctx, c, "/admin/terms/"+id, patch)
}

// FAQ

func (c *Client) ListFAQs(ctx context.Context, p ListParams) (*ListPage[*support.FAQ], error) {
	return listResource[*support.FAQ](ctx, c, "/admin/faqs", p)
}

func (c *Client) CreateFAQ(ctx context.Context, faq *support.FAQ) (*support.FAQ, error) {
	return createResource(ctx, c, "/admin/faqs", faq)
}

func (c *Client) UpdateFAQ(ctx context.Context, id string, patch any) (*support.FAQ, error) {
	return updateResource[support.FAQ](ctx, c, "/admin/faqs/"+id, patch)
}

func (c *Client) DeleteFAQ(ctx context.Context, id string) error {
	return deleteResource(ctx, c, "/admin/faqs/"+id)
}

// SIZE GUIDES

func (c *Client) GetSizeGuide(ctx context.Context, category string) (*sizeguide.Guide, error) {
	return getResource[sizeguide.Guide](ctx, c, fmt.Sprintf("/admin/size-guides/%s", url.PathEscape(category)))
}
