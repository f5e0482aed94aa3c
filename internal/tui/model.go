// Package tui is the terminal storefront: category tabs, product list, cart
// sidebar and the transient add-to-cart notification, driven by bubbletea.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ikkim/storefront/internal/app/model"
	"github.com/ikkim/storefront/internal/app/service"
	"github.com/ikkim/storefront/pkg/logger"
)

// DefaultNotificationTTL is how long the add-to-cart toast stays on screen
const DefaultNotificationTTL = 2 * time.Second

// clearNotificationMsg expires the toast raised as notification number seq
type clearNotificationMsg struct {
	seq int
}

// Model holds one shopper's storefront state
type Model struct {
	catalog service.CatalogService
	session *model.Session
	styles  Styles
	now     func() time.Time

	categories  []string
	categoryIdx int
	products    []model.Product
	productIdx  int
	cartIdx     int
	focusCart   bool

	toast           *model.Notification
	notificationSeq int
	notificationTTL time.Duration

	width  int
	height int
}

type Option func(*Model)

// WithCategory preselects a category tab; unknown names are ignored
func WithCategory(category string) Option {
	return func(m *Model) {
		for i, c := range m.categories {
			if c == category {
				m.categoryIdx = i
			}
		}
	}
}

func WithNotificationTTL(ttl time.Duration) Option {
	return func(m *Model) {
		m.notificationTTL = ttl
	}
}

func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		m.now = now
	}
}

func New(catalog service.CatalogService, opts ...Option) Model {
	m := Model{
		catalog:         catalog,
		styles:          DefaultStyles(),
		now:             time.Now,
		categories:      catalog.Categories(),
		notificationTTL: DefaultNotificationTTL,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.session = model.NewSession("terminal", m.now())
	m.applyCategory()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case clearNotificationMsg:
		// a newer toast replaced this one
		if msg.seq == m.notificationSeq {
			m.toast = nil
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab":
		m.focusCart = !m.focusCart && m.session.Cart.Len() > 0
		m.clampCart()
		return m, nil
	case "left", "h":
		m.moveCategory(-1)
		return m, nil
	case "right", "l":
		m.moveCategory(1)
		return m, nil
	}

	if m.focusCart {
		return m.handleCartKey(msg)
	}
	return m.handleCatalogKey(msg)
}

func (m Model) handleCatalogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.productIdx > 0 {
			m.productIdx--
		}
	case "down", "j":
		if m.productIdx < len(m.products)-1 {
			m.productIdx++
		}
	case "a", "enter":
		return m.addSelected()
	case "f":
		if p, ok := m.selectedProduct(); ok {
			m.session.Favorites.Toggle(p.ID)
		}
	}
	return m, nil
}

func (m Model) handleCartKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.session.Cart.Items()
	if len(items) == 0 {
		m.focusCart = false
		return m, nil
	}
	line := items[m.cartIdx]

	switch msg.String() {
	case "up", "k":
		if m.cartIdx > 0 {
			m.cartIdx--
		}
	case "down", "j":
		if m.cartIdx < len(items)-1 {
			m.cartIdx++
		}
	case "+", "=":
		m.session.Cart.SetQuantity(line.ID, line.Quantity+1)
	case "-":
		m.session.Cart.SetQuantity(line.ID, line.Quantity-1)
	case "x", "delete", "backspace":
		m.session.Cart.RemoveItem(line.ID)
	}

	m.clampCart()
	if m.session.Cart.Len() == 0 {
		m.focusCart = false
	}
	return m, nil
}

// addSelected forwards the highlighted product to the cart and raises the toast
func (m Model) addSelected() (tea.Model, tea.Cmd) {
	p, ok := m.selectedProduct()
	if !ok {
		return m, nil
	}

	now := m.now()
	m.session.Cart.AddItem(p)
	m.session.NotifyAdded(p, now)
	m.toast = m.session.TakeNotification()
	m.notificationSeq++

	logger.Debug("Item added to cart", map[string]interface{}{
		"product_id": p.ID,
		"count":      m.session.Cart.TotalCount(),
	})

	seq := m.notificationSeq
	return m, tea.Tick(m.notificationTTL, func(time.Time) tea.Msg {
		return clearNotificationMsg{seq: seq}
	})
}

func (m *Model) moveCategory(delta int) {
	n := len(m.categories)
	if n == 0 {
		return
	}
	m.categoryIdx = (m.categoryIdx + delta + n) % n
	m.applyCategory()
}

func (m *Model) applyCategory() {
	category := model.CategoryAll
	if m.categoryIdx < len(m.categories) {
		category = m.categories[m.categoryIdx]
	}
	m.session.SelectedCategory = category
	m.products = m.catalog.ListProducts(category)
	m.productIdx = 0
}

func (m *Model) clampCart() {
	if n := m.session.Cart.Len(); m.cartIdx >= n {
		m.cartIdx = n - 1
	}
	if m.cartIdx < 0 {
		m.cartIdx = 0
	}
}

func (m Model) selectedProduct() (model.Product, bool) {
	if m.productIdx < 0 || m.productIdx >= len(m.products) {
		return model.Product{}, false
	}
	return m.products[m.productIdx], true
}

// Cart exposes the shopper's cart
func (m Model) Cart() *model.Cart {
	return &m.session.Cart
}

func (m Model) SelectedCategory() string {
	return m.session.SelectedCategory
}

// Notification returns the toast currently on screen, if any
func (m Model) Notification() *model.Notification {
	return m.toast
}

func (m Model) IsFavorite(productID string) bool {
	return m.session.Favorites.Contains(productID)
}
