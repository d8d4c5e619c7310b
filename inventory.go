package diablo

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// InventorySize is the number of backpack slots.
const InventorySize = 8

// Inventory is the player's backpack. Items keep insertion order; removing
// one shifts the rest down, so slot indices are stable only between edits.
type Inventory struct {
	items []Item
}

// NewInventory creates an empty backpack.
func NewInventory() *Inventory {
	return &Inventory{}
}

// Add appends an item. It reports false when the backpack is full.
func (inv *Inventory) Add(it Item) bool {
	if len(inv.items) >= InventorySize {
		return false
	}
	inv.items = append(inv.items, it)
	return true
}

// RemoveAt takes the item out of a slot, shifting later items down.
func (inv *Inventory) RemoveAt(i int) (Item, bool) {
	if i < 0 || i >= len(inv.items) {
		return Item{}, false
	}
	it := inv.items[i]
	inv.items = append(inv.items[:i], inv.items[i+1:]...)
	return it, true
}

// At returns the item in a slot without removing it.
func (inv *Inventory) At(i int) (Item, bool) {
	if i < 0 || i >= len(inv.items) {
		return Item{}, false
	}
	return inv.items[i], true
}

// Len returns the number of carried items.
func (inv *Inventory) Len() int {
	return len(inv.items)
}

// Full reports whether every slot is occupied.
func (inv *Inventory) Full() bool {
	return len(inv.items) >= InventorySize
}

// GroundItem is loot lying in the world, waiting to be walked over.
type GroundItem struct {
	X, Y float64
	Item Item
}

// Draw renders the drop as a small diamond tinted by item type.
func (g *GroundItem) Draw(dst *ebiten.Image, cam *Camera) {
	sx, sy := cam.WorldToScreen(g.X, g.Y)
	fillPoly(dst, sx, sy, 4, 8, 45, itemColor(g.Item))
	strokePoly(dst, sx, sy, 4, 8, 45, 1.5, colorWhite)
}

// --- inventory panel ---

const (
	inventoryPanelW = 400.0
	inventoryPanelH = 500.0
	slotSize        = 50.0
	slotPadding     = 10.0
	slotsPerRow     = 4
)

func inventoryPanelOrigin(screenW, screenH float64) (x, y float64) {
	return screenW/2 - inventoryPanelW/2, screenH/2 - inventoryPanelH/2
}

// slotOrigin is the top-left corner of backpack slot i within the panel.
func slotOrigin(panelX, panelY float64, i int) (x, y float64) {
	row := i / slotsPerRow
	col := i % slotsPerRow
	x = panelX + 20 + float64(col)*(slotSize+slotPadding)
	y = panelY + 200 + float64(row)*(slotSize+slotPadding)
	return x, y
}

// SlotAt returns the backpack slot under the cursor, occupied or not.
func SlotAt(screenW, screenH, mouseX, mouseY float64) (int, bool) {
	panelX, panelY := inventoryPanelOrigin(screenW, screenH)
	for i := 0; i < InventorySize; i++ {
		sx, sy := slotOrigin(panelX, panelY, i)
		if mouseX >= sx && mouseX <= sx+slotSize && mouseY >= sy && mouseY <= sy+slotSize {
			return i, true
		}
	}
	return 0, false
}

// DrawInventoryScreen renders the backpack panel over the paused game:
// equipped gear, the slot grid, and a tooltip for the hovered item.
func DrawInventoryScreen(dst *ebiten.Image, p *Player, mouseX, mouseY float64) {
	bounds := dst.Bounds()
	screenW := float64(bounds.Dx())
	screenH := float64(bounds.Dy())

	fillRect(dst, 0, 0, screenW, screenH, color.RGBA{0, 0, 0, 180})

	panelX, panelY := inventoryPanelOrigin(screenW, screenH)
	fillRect(dst, panelX, panelY, inventoryPanelW, inventoryPanelH, color.RGBA{40, 40, 50, 255})
	strokeRect(dst, panelX, panelY, inventoryPanelW, inventoryPanelH, 2, colorWhite)

	drawText(dst, "INVENTORY", panelX+20, panelY+35, 32, colorWhite)

	drawText(dst, "Equipped:", panelX+20, panelY+80, 20, colorGray)
	drawText(dst, fmt.Sprintf("Weapon: %s", p.Weapon.Name()), panelX+30, panelY+110, 18, colorOrange)
	armorName := "None"
	if p.Armor != ArmorNone {
		armorName = p.Armor.Name()
	}
	drawText(dst, fmt.Sprintf("Armor: %s", armorName), panelX+30, panelY+135, 18, colorSkyBlue)

	drawText(dst, "Backpack (click to equip):", panelX+20, panelY+180, 20, colorGray)

	hovered, hoveredOK := SlotAt(screenW, screenH, mouseX, mouseY)

	for i := 0; i < InventorySize; i++ {
		sx, sy := slotOrigin(panelX, panelY, i)
		it, occupied := p.Inventory.At(i)

		bg := color.RGBA{60, 60, 70, 255}
		if hoveredOK && hovered == i && occupied {
			bg = color.RGBA{80, 80, 100, 255}
		}
		fillRect(dst, sx, sy, slotSize, slotSize, bg)
		strokeRect(dst, sx, sy, slotSize, slotSize, 1, colorGray)

		if occupied {
			fillPoly(dst, sx+slotSize/2, sy+slotSize/2, 4, 15, 45, itemColor(it))
		}
	}

	if hoveredOK {
		if it, ok := p.Inventory.At(hovered); ok {
			drawTooltip(dst, screenW, mouseX+15, mouseY+15, it)
		}
	}

	drawText(dst, fmt.Sprintf("%d/%d slots used", p.Inventory.Len(), InventorySize),
		panelX+20, panelY+inventoryPanelH-40, 16, colorGray)
	drawText(dst, "Click item to equip | Press I or ESC to close",
		panelX+20, panelY+inventoryPanelH-20, 14, colorGray)
}

// drawTooltip renders the item card next to the cursor, flipped to the
// cursor's left when it would run off the right edge.
func drawTooltip(dst *ebiten.Image, screenW, x, y float64, it Item) {
	name := it.Name()
	desc := it.Description()

	const (
		padding  = 8.0
		nameSize = 18.0
		descSize = 14.0
	)

	nameW, _ := measureText(name, nameSize)
	descW, _ := measureText(desc, descSize)
	w := max(nameW, descW) + padding*2
	h := nameSize + descSize + padding*2

	if x+w > screenW {
		x = x - w - 15
	}

	fillRect(dst, x, y, w, h, color.RGBA{20, 20, 30, 240})
	strokeRect(dst, x, y, w, h, 1, colorWhite)

	drawText(dst, name, x+padding, y+padding+nameSize-4, nameSize, itemColor(it))
	drawText(dst, desc, x+padding, y+padding+nameSize+descSize, descSize, colorLightGray)
}
