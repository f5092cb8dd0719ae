package arena

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"spellarena/internal/character"
	"spellarena/internal/config"
)

var (
	ErrMaxLevel      = errors.New("already at max level")
	ErrNotEnoughGold = errors.New("not enough gold")
	ErrAlreadyKnown  = errors.New("spell already known")
	ErrUnknownItem   = errors.New("unknown shop item")
)

// Offer is one line of the shop listing.
type Offer struct {
	Key        string
	Name       string
	Cost       int
	Affordable bool
}

// Shop sells upgrades between arena runs. Every purchase goes through the
// player's gold and upgrade setters.
type Shop struct {
	cfg    config.ShopConfig
	spells map[string]*config.SpellConfig
}

func NewShop(cfg *config.Config) *Shop {
	return &Shop{cfg: cfg.Shop, spells: cfg.Spells}
}

// nextTier returns the name and cost of the upgrade after level, or false
// when the table is exhausted.
func nextTier(costs []int, names []string, level int) (string, int, bool) {
	idx := level - 1
	if idx < 0 || idx >= len(costs) {
		return "", 0, false
	}
	name := fmt.Sprintf("Tier %d", level+1)
	if idx < len(names) {
		name = names[idx]
	}
	return name, costs[idx], true
}

// Offers lists what the player can still buy.
func (s *Shop) Offers(p *character.Player) []Offer {
	var offers []Offer
	add := func(key, name string, cost int) {
		offers = append(offers, Offer{Key: key, Name: name, Cost: cost, Affordable: p.Gold >= cost})
	}

	lv := p.Levels()
	if name, cost, ok := nextTier(s.cfg.RobeCosts, s.cfg.Names.Robes, lv.Spell); ok {
		add("robe", name, cost)
	}
	if name, cost, ok := nextTier(s.cfg.ArmorCosts, s.cfg.Names.Armor, lv.Armor); ok {
		add("armor", name, cost)
	}

	keys := make([]string, 0, len(s.cfg.SpellPrices))
	for key := range s.cfg.SpellPrices {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if p.KnowsSpell(key) {
			continue
		}
		name := key
		if sc := s.spells[key]; sc != nil {
			name = sc.Name
		}
		add("spell:"+key, name, s.cfg.SpellPrices[key])
	}

	for i, potion := range s.cfg.Potions {
		add("potion:"+strconv.Itoa(i), potion.Name, potion.Cost)
	}
	return offers
}

// Buy purchases the offer with the given key.
func (s *Shop) Buy(p *character.Player, key string) error {
	switch {
	case key == "robe":
		return s.BuyRobe(p)
	case key == "armor":
		return s.BuyArmor(p)
	case strings.HasPrefix(key, "spell:"):
		return s.BuySpell(p, strings.TrimPrefix(key, "spell:"))
	case strings.HasPrefix(key, "potion:"):
		idx, err := strconv.Atoi(strings.TrimPrefix(key, "potion:"))
		if err != nil {
			return fmt.Errorf("%w: %s", ErrUnknownItem, key)
		}
		return s.BuyPotion(p, idx)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownItem, key)
	}
}

// BuyRobe raises the spell level by one.
func (s *Shop) BuyRobe(p *character.Player) error {
	level := p.Levels().Spell
	_, cost, ok := nextTier(s.cfg.RobeCosts, s.cfg.Names.Robes, level)
	if !ok {
		return ErrMaxLevel
	}
	if !p.SpendGold(cost) {
		return ErrNotEnoughGold
	}
	p.SetSpellLevel(level + 1)
	return nil
}

// BuyArmor raises the armor level by one.
func (s *Shop) BuyArmor(p *character.Player) error {
	level := p.Levels().Armor
	_, cost, ok := nextTier(s.cfg.ArmorCosts, s.cfg.Names.Armor, level)
	if !ok {
		return ErrMaxLevel
	}
	if !p.SpendGold(cost) {
		return ErrNotEnoughGold
	}
	p.SetArmorLevel(level + 1)
	return nil
}

func (s *Shop) BuySpell(p *character.Player, key string) error {
	price, ok := s.cfg.SpellPrices[key]
	if !ok {
		return fmt.Errorf("%w: spell %s", ErrUnknownItem, key)
	}
	if p.KnowsSpell(key) {
		return ErrAlreadyKnown
	}
	if !p.SpendGold(price) {
		return ErrNotEnoughGold
	}
	p.LearnSpell(key)
	return nil
}

func (s *Shop) BuyPotion(p *character.Player, idx int) error {
	if idx < 0 || idx >= len(s.cfg.Potions) {
		return fmt.Errorf("%w: potion %d", ErrUnknownItem, idx)
	}
	potion := s.cfg.Potions[idx]
	if !p.SpendGold(potion.Cost) {
		return ErrNotEnoughGold
	}
	p.Heal(potion.Heal)
	p.RestoreMana(potion.Mana)
	return nil
}
