package session

import (
	"sync"

	"github.com/jackyeh168/mahjong_ledger/src/internal/domain/mahjong"
)

// Session 一次使用期間的記憶體狀態：名單、當前牌桌、倍率
//
// 這些狀態不寫入資料庫，程序結束即消失
// 同時實作 game.TableProvider 與 game.MultiplierProvider
type Session struct {
	mu         sync.RWMutex
	roster     *mahjong.Roster
	active     mahjong.ActivePlayers
	multiplier mahjong.Multiplier
}

// NewSession 建立 Session
//
// rosterNames 為空時使用預設名單；tableNames 為空時不選定牌桌
func NewSession(rosterNames, tableNames []string, multiplier mahjong.Multiplier) (*Session, error) {
	roster, err := mahjong.NewRoster(rosterNames)
	if err != nil {
		return nil, err
	}

	s := &Session{roster: roster, multiplier: multiplier}
	if len(tableNames) > 0 {
		active, err := mahjong.NewActivePlayers(roster, tableNames)
		if err != nil {
			return nil, err
		}
		s.active = active
	}
	return s, nil
}

// ActiveTable 當前牌桌，尚未選定時返回 ErrInvalidActivePlayers
func (s *Session) ActiveTable() (mahjong.ActivePlayers, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.active.IsZero() {
		return mahjong.ActivePlayers{}, mahjong.ErrInvalidActivePlayers.WithContext("reason", "no table selected")
	}
	return s.active, nil
}

// Multiplier 目前生效的倍率
func (s *Session) Multiplier() mahjong.Multiplier {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.multiplier
}

// Players 名單（字典序）
func (s *Session) Players() []mahjong.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.roster.Players()
}

func (s *Session) addPlayer(name string) (mahjong.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roster.Add(name)
}

// resetRoster 重置名單；若牌桌上有人被移出名單，一併清除牌桌
func (s *Session) resetRoster() (tableCleared bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.roster.Reset()
	if s.active.IsZero() {
		return false
	}
	for _, p := range s.active.Players() {
		if !s.roster.Contains(p) {
			s.active = mahjong.ActivePlayers{}
			return true
		}
	}
	return false
}

func (s *Session) selectTable(names []string) (mahjong.ActivePlayers, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	active, err := mahjong.NewActivePlayers(s.roster, names)
	if err != nil {
		return mahjong.ActivePlayers{}, err
	}
	s.active = active
	return active, nil
}

func (s *Session) setMultiplier(m mahjong.Multiplier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.multiplier = m
}
