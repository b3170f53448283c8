package mux

import (
	"net/http"
	"strconv"
	"uno-server/internal/rng"
	"uno-server/internal/util"
	"uno-server/pkg/deck"
	"uno-server/pkg/uno"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type postGamePayload struct {
	// Seed makes the shuffle reproducible. A random source is used when omitted
	Seed *int64 `json:"seed"`
}

func (m *Mux) postGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload postGamePayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		var gen rng.Generator = m.rng
		if payload.Seed != nil {
			gen = rng.NewSeeded(*payload.Seed)
		}

		record, err := m.store.Create(r.Context(), uno.NewGame(gen))
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		logrus.WithFields(logrus.Fields{
			"game":        record.ID,
			"currentCard": record.Game.CurrentCard().String(),
		}).Info("game created")

		writeJSON(w, http.StatusCreated, record)
	}
}

func (m *Mux) getGameUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, recordFromContext(r))
	}
}

type postPlayerPayload struct {
	Name string `json:"name"`
	Turn *int   `json:"turn"`
}

type playerResponse struct {
	Index  int         `json:"index"`
	Player *uno.Player `json:"player"`
}

func (m *Mux) postGameUUIDPlayer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload postPlayerPayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		record := recordFromContext(r)
		game := record.Game

		turn := len(game.Players())
		if payload.Turn != nil {
			if *payload.Turn < 0 {
				writeJSONError(w, http.StatusBadRequest, uno.UserError("turn cannot be negative"))
				return
			}

			turn = *payload.Turn
		}

		name := payload.Name
		if name == "" {
			name = util.GetRandomName()
		}

		player := uno.NewPlayer()
		player.SetName(name)
		player.SetTurn(turn)
		index := game.AddPlayer(player)

		if err := m.store.Save(r.Context(), record); err != nil {
			writeMaybeNotFoundError(w, err)
			return
		}

		logrus.WithFields(logrus.Fields{
			"game":   record.ID,
			"player": name,
			"index":  index,
		}).Info("player added")

		writeJSON(w, http.StatusCreated, playerResponse{
			Index:  index,
			Player: player,
		})
	}
}

type drawResponse struct {
	Card      deck.Card   `json:"card"`
	CardsLeft int         `json:"cardsLeft"`
	Player    *uno.Player `json:"player"`
}

func (m *Mux) postGameUUIDPlayerIndexDraw() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, err := strconv.Atoi(gmux.Vars(r)["index"])
		if err != nil {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		record := recordFromContext(r)
		card, ok, err := record.Game.DrawCard(index)
		if err != nil {
			writeJSONError(w, http.StatusNotFound, err)
			return
		}

		if !ok {
			writeJSONError(w, http.StatusConflict, uno.ErrEmptyDeck)
			return
		}

		if err := m.store.Save(r.Context(), record); err != nil {
			writeMaybeNotFoundError(w, err)
			return
		}

		player, _ := record.Game.Player(index)
		writeJSON(w, http.StatusOK, drawResponse{
			Card:      card,
			CardsLeft: record.Game.Deck().Len(),
			Player:    player,
		})
	}
}

func (m *Mux) postGameUUIDReshuffle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		record := recordFromContext(r)
		record.Game.Reshuffle(m.rng)

		if err := m.store.Save(r.Context(), record); err != nil {
			writeMaybeNotFoundError(w, err)
			return
		}

		logrus.WithFields(logrus.Fields{
			"game":      record.ID,
			"cardsLeft": record.Game.Deck().Len(),
		}).Debug("deck reshuffled")

		writeJSON(w, http.StatusOK, record)
	}
}
