package testutil

import (
	"context"
	"time"

	"github.com/standup-lab/backend/internal/entity"
	"github.com/standup-lab/backend/pkg/xcontext"
)

var fixtureBase = time.Now().Add(-time.Hour)

var (
	// Participant1-4 were all created before Round1 started.
	Participant1 = entity.Participant{
		Base: entity.Base{ID: "participant1", CreatedAt: fixtureBase},
		Name: "alice",
	}
	Participant2 = entity.Participant{
		Base: entity.Base{ID: "participant2", CreatedAt: fixtureBase.Add(time.Minute)},
		Name: "bob",
	}
	Participant3 = entity.Participant{
		Base: entity.Base{ID: "participant3", CreatedAt: fixtureBase.Add(2 * time.Minute)},
		Name: "carol",
	}
	Participant4 = entity.Participant{
		Base: entity.Base{ID: "participant4", CreatedAt: fixtureBase.Add(3 * time.Minute)},
		Name: "dave",
	}

	Round1 = entity.Round{
		Base: entity.Base{ID: "round1", CreatedAt: fixtureBase.Add(10 * time.Minute)},
	}

	// Participant5 joined after Round1 started, so it is never eligible
	// for that round.
	Participant5 = entity.Participant{
		Base: entity.Base{ID: "participant5", CreatedAt: fixtureBase.Add(20 * time.Minute)},
		Name: "erin",
	}
)

func CreateFixtureDb(ctx context.Context) {
	db := xcontext.DB(ctx)

	fixtures := []any{
		&Participant1, &Participant2, &Participant3, &Participant4,
		&Round1,
		&Participant5,
	}

	for _, fixture := range fixtures {
		if err := db.Create(fixture).Error; err != nil {
			panic(err)
		}
	}
}
