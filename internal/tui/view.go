package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ikkim/storefront/internal/app/model"
)

const (
	cartPaneWidth = 36
	helpText      = "←/→ category • ↑/↓ move • a add • f favorite • tab cart • +/- qty • x remove • q quit"
)

func (m Model) View() string {
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		m.styles.Title.Render("Storefront"),
		"  ",
		m.renderBadge(),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderCatalog(),
		" ",
		m.renderCart(),
	)

	sections := []string{header, m.renderTabs(), body, m.renderToast(), m.styles.Help.Render(helpText)}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderBadge() string {
	return m.styles.Badge.Render(fmt.Sprintf("🛒 %d", m.session.Cart.TotalCount()))
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(m.categories))
	for i, c := range m.categories {
		if i == m.categoryIdx {
			tabs = append(tabs, m.styles.ActiveTab.Render(c))
		} else {
			tabs = append(tabs, m.styles.Tab.Render(c))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderCatalog() string {
	var b strings.Builder
	if len(m.products) == 0 {
		b.WriteString(m.styles.Muted.Render("No products in this category"))
	}

	for i, p := range m.products {
		marker := "  "
		if i == m.productIdx && !m.focusCart {
			marker = "> "
		}

		star := m.styles.Muted.Render("☆")
		if m.session.Favorites.Contains(p.ID) {
			star = m.styles.Favorite.Render("★")
		}

		name := p.Name
		if i == m.productIdx && !m.focusCart {
			name = m.styles.Selected.Render(name)
		}

		line := fmt.Sprintf("%s%s %-22s %s", marker, star, name, formatPrice(p))
		if tag := m.renderTag(p); tag != "" {
			line += " " + tag
		}
		b.WriteString(line)
		if i < len(m.products)-1 {
			b.WriteString("\n")
		}
	}

	style := m.styles.Pane
	if !m.focusCart {
		style = m.styles.FocusedPane
	}
	if m.width > cartPaneWidth+8 {
		style = style.Width(m.width - cartPaneWidth - 8)
	}
	return style.Render(b.String())
}

func (m Model) renderTag(p model.Product) string {
	switch {
	case p.IsSale && p.DiscountPercent() > 0:
		return m.styles.Sale.Render(fmt.Sprintf("-%d%%", p.DiscountPercent()))
	case p.IsSale:
		return m.styles.Sale.Render("SALE")
	case p.IsNew:
		return m.styles.New.Render("NEW")
	}
	return ""
}

func (m Model) renderCart() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Cart"))
	b.WriteString("\n")

	items := m.session.Cart.Items()
	if len(items) == 0 {
		b.WriteString(m.styles.Muted.Render("Your cart is empty"))
	}
	for i, item := range items {
		line := fmt.Sprintf("%-18s x%-3d $%8.2f", truncate(item.Name, 18), item.Quantity, item.Total())
		if m.focusCart && i == m.cartIdx {
			line = m.styles.Selected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if len(items) > 0 {
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("%-22s $%8.2f", "Subtotal", m.session.Cart.Subtotal())))
	}

	style := m.styles.Pane
	if m.focusCart {
		style = m.styles.FocusedPane
	}
	return style.Width(cartPaneWidth).Render(b.String())
}

func (m Model) renderToast() string {
	if m.toast == nil {
		return ""
	}
	return m.styles.Toast.Render(m.toast.Message)
}

func formatPrice(p model.Product) string {
	if p.OriginalPrice > p.Price {
		return fmt.Sprintf("$%.2f (was $%.2f)", p.Price, p.OriginalPrice)
	}
	return fmt.Sprintf("$%.2f", p.Price)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
