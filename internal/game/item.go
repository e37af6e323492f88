package game

type Material string

const (
	PlayerHead Material = "PLAYER_HEAD"
)

type ItemMeta interface {
	Clone() ItemMeta
}

// ItemStack hands out copies of its metadata. Changes must be written back with SetItemMeta.
type ItemStack struct {
	Material Material
	Amount   int

	meta ItemMeta
}

func NewItemStack(material Material) *ItemStack {
	stack := &ItemStack{
		Material: material,
		Amount:   1,
	}

	if material == PlayerHead {
		stack.meta = &SkullMeta{}
	}

	return stack
}

func (s *ItemStack) ItemMeta() ItemMeta {
	if s.meta == nil {
		return nil
	}

	return s.meta.Clone()
}

func (s *ItemStack) SetItemMeta(meta ItemMeta) {
	if meta == nil {
		s.meta = nil
		return
	}

	s.meta = meta.Clone()
}
