package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/application/usecases/queries"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/menugroup"
	"kitchenpos/internal/core/domain/model/product"
)

// CreateProduct handles POST /api/products.
func (s *Server) CreateProduct(c echo.Context) error {
	var req NewProduct
	if err := bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateProductCommand(req.Name, priceLiteral(req.Price))
	if err != nil {
		return err
	}

	p, err := s.handlers.CreateProduct.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return created(c, resourcePath("products", p.ID().Int64()), productResponse(p))
}

// GetProducts handles GET /api/products.
func (s *Server) GetProducts(c echo.Context) error {
	products, err := s.handlers.GetAllProducts.Handle(c.Request().Context(), queries.NewGetAllProductsQuery())
	if err != nil {
		return err
	}

	response := make([]Product, len(products))
	for i, p := range products {
		response[i] = Product{ID: p.ID.Int64(), Name: p.Name, Price: p.Price}
	}

	return c.JSON(http.StatusOK, response)
}

// CreateMenuGroup handles POST /api/menu-groups.
func (s *Server) CreateMenuGroup(c echo.Context) error {
	var req NewMenuGroup
	if err := bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateMenuGroupCommand(req.Name)
	if err != nil {
		return err
	}

	g, err := s.handlers.CreateMenuGroup.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return created(c, resourcePath("menu-groups", g.ID().Int64()), menuGroupResponse(g))
}

// GetMenuGroups handles GET /api/menu-groups.
func (s *Server) GetMenuGroups(c echo.Context) error {
	groups, err := s.handlers.GetAllMenuGroups.Handle(c.Request().Context(), queries.NewGetAllMenuGroupsQuery())
	if err != nil {
		return err
	}

	response := make([]MenuGroup, len(groups))
	for i, g := range groups {
		response[i] = MenuGroup{ID: g.ID.Int64(), Name: g.Name}
	}

	return c.JSON(http.StatusOK, response)
}

// CreateMenu handles POST /api/menus.
func (s *Server) CreateMenu(c echo.Context) error {
	var req NewMenu
	if err := bind(c, &req); err != nil {
		return err
	}

	inputs := make([]commands.MenuProductInput, len(req.MenuProducts))
	for i, mp := range req.MenuProducts {
		inputs[i] = commands.MenuProductInput{ProductID: mp.ProductID, Quantity: mp.Quantity}
	}

	cmd, err := commands.NewCreateMenuCommand(
		req.Name,
		priceLiteral(req.Price),
		req.MenuGroupID,
		inputs,
	)
	if err != nil {
		return err
	}

	m, err := s.handlers.CreateMenu.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return created(c, resourcePath("menus", m.ID().Int64()), menuResponse(m))
}

// GetMenus handles GET /api/menus.
func (s *Server) GetMenus(c echo.Context) error {
	menus, err := s.handlers.GetAllMenus.Handle(c.Request().Context(), queries.NewGetAllMenusQuery())
	if err != nil {
		return err
	}

	response := make([]Menu, len(menus))
	for i, m := range menus {
		products := make([]MenuProduct, len(m.MenuProducts))
		for j, mp := range m.MenuProducts {
			products[j] = MenuProduct{ProductID: mp.ProductID.Int64(), Quantity: mp.Quantity}
		}
		response[i] = Menu{
			ID:           m.ID.Int64(),
			Name:         m.Name,
			Price:        m.Price,
			MenuGroupID:  m.MenuGroupID.Int64(),
			MenuProducts: products,
		}
	}

	return c.JSON(http.StatusOK, response)
}

// priceLiteral turns an absent price into an empty literal, which the
// domain rejects as missing.
func priceLiteral(price decimal.NullDecimal) string {
	if !price.Valid {
		return ""
	}
	return price.Decimal.String()
}

func productResponse(p *product.Product) Product {
	return Product{
		ID:    p.ID().Int64(),
		Name:  p.Name().Value(),
		Price: p.Price().Decimal(),
	}
}

func menuGroupResponse(g *menugroup.MenuGroup) MenuGroup {
	return MenuGroup{ID: g.ID().Int64(), Name: g.Name().Value()}
}

func menuResponse(m *menu.Menu) Menu {
	products := make([]MenuProduct, 0, len(m.MenuProducts()))
	for _, mp := range m.MenuProducts() {
		products = append(products, MenuProduct{
			ProductID: mp.ProductID().Int64(),
			Quantity:  mp.Quantity().Value(),
		})
	}

	return Menu{
		ID:           m.ID().Int64(),
		Name:         m.Name().Value(),
		Price:        m.Price().Decimal(),
		MenuGroupID:  m.MenuGroupID().Int64(),
		MenuProducts: products,
	}
}
