package wordlist_test

import (
	"context"
	"correcthorse/pkg/domain"
	"correcthorse/pkg/serrors"
	"correcthorse/pkg/wordlist"
	mockwordlist "correcthorse/pkg/wordlist/mock"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestChain_FallsBackOnNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := mockwordlist.NewMockLoader(ctrl)
	second := mockwordlist.NewMockLoader(ctrl)

	first.EXPECT().Load(gomock.Any(), "english").Return(nil, serrors.With(serrors.ErrNotFound, "missing"))
	second.EXPECT().Load(gomock.Any(), "english").Return(domain.Words("horse"), nil)

	words, err := wordlist.Chain{first, second}.Load(context.Background(), "english")
	require.NoError(t, err)
	require.Equal(t, domain.Words("horse"), words)
}

func TestChain_StopsOnOtherErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := mockwordlist.NewMockLoader(ctrl)
	second := mockwordlist.NewMockLoader(ctrl)

	ioErr := serrors.Wrap(serrors.ErrIO, errors.New("disk on fire"), "reading")
	first.EXPECT().Load(gomock.Any(), "english").Return(nil, ioErr)
	second.EXPECT().Load(gomock.Any(), gomock.Any()).Times(0)

	_, err := wordlist.Chain{first, second}.Load(context.Background(), "english")
	require.ErrorIs(t, err, serrors.ErrIO)
}

func TestChain_AllMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	only := mockwordlist.NewMockLoader(ctrl)
	only.EXPECT().Load(gomock.Any(), "klingon").Return(nil, serrors.With(serrors.ErrNotFound, "missing"))

	_, err := wordlist.Chain{only}.Load(context.Background(), "klingon")
	require.ErrorIs(t, err, serrors.ErrNotFound)

	_, err = wordlist.Chain{}.Load(context.Background(), "klingon")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestChain_DirThenEmbedded(t *testing.T) {
	chain := wordlist.Chain{wordlist.NewDir(t.TempDir()), wordlist.NewEmbedded()}

	words, err := chain.Load(context.Background(), domain.DefaultList)
	require.NoError(t, err)
	require.NotEmpty(t, words)
}
