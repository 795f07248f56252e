package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/vesting-cli/internal/domain"
)

// DefaultStartTolerance is how far start() may drift from the expected start, in seconds
const DefaultStartTolerance uint64 = 1

// checkMargin is the distance from the schedule bounds at which vestedAmount is probed
const checkMargin uint64 = 100

// CheckVestingParams contains parameters for checking a deployed wallet
type CheckVestingParams struct {
	// Ref is an address or registry ID; empty selects from recorded deployments
	Ref string
	// Expected replaces the registry record as the source of expected values
	Expected *domain.DeploymentParams
	// Overrides are applied on top of the expected values
	Overrides      domain.RawParams
	StartTolerance uint64
	// AllowReleased skips the released() == 0 check for wallets that already paid out
	AllowReleased bool
}

// CheckVesting asserts the on-chain state of a VestingWallet against its deployment parameters
type CheckVesting struct {
	chain    ChainClient
	contract VestingContract
	signer   SignerProvider
	wallets  walletResolver
	progress ProgressSink
}

// NewCheckVesting creates a new CheckVesting use case
func NewCheckVesting(
	chain ChainClient,
	contract VestingContract,
	signer SignerProvider,
	repo DeploymentRepository,
	selector DeploymentSelector,
	progress ProgressSink,
) *CheckVesting {
	return &CheckVesting{
		chain:    chain,
		contract: contract,
		signer:   signer,
		wallets:  walletResolver{repo: repo, selector: selector},
		progress: progress,
	}
}

// Run executes every check. The report is returned even when checks fail, together with
// an error wrapping domain.ErrChecksFailed.
func (uc *CheckVesting) Run(ctx context.Context, params CheckVestingParams) (*domain.CheckReport, error) {
	chainID, err := uc.chain.ChainID(ctx)
	if err != nil {
		return nil, err
	}

	wallet, record, err := uc.wallets.resolve(ctx, chainID, params.Ref)
	if err != nil {
		return nil, err
	}

	expected, err := uc.expected(ctx, params, record)
	if err != nil {
		return nil, err
	}

	now, err := uc.chain.LatestBlockTime(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read chain time: %w", err)
	}

	tolerance := params.StartTolerance
	if tolerance == 0 {
		tolerance = DefaultStartTolerance
	}

	report := &domain.CheckReport{
		Address: wallet.Hex(),
		ChainID: chainID,
		Now:     now,
	}
	run := func(name string, check func() domain.CheckOutcome) {
		uc.progress.OnProgress(ctx, ProgressEvent{Stage: "checking", Message: name, Spinner: true})
		outcome := check()
		outcome.Name = name
		report.Outcomes = append(report.Outcomes, outcome)
	}

	run("owner() == beneficiary", func() domain.CheckOutcome {
		owner, err := uc.contract.Owner(ctx, wallet)
		if err != nil {
			return errored(expected.Beneficiary.Hex(), err)
		}
		return compare(expected.Beneficiary.Hex(), owner.Hex(), owner == expected.Beneficiary)
	})

	run(fmt.Sprintf("start() == start ± %ds", tolerance), func() domain.CheckOutcome {
		start, err := uc.contract.Start(ctx, wallet)
		if err != nil {
			return errored(fmt.Sprint(expected.Start), err)
		}
		return compare(fmt.Sprint(expected.Start), fmt.Sprint(start), absDiff(start, expected.Start) <= tolerance)
	})

	run("duration() == duration", func() domain.CheckOutcome {
		duration, err := uc.contract.Duration(ctx, wallet)
		if err != nil {
			return errored(fmt.Sprint(expected.Duration), err)
		}
		return compare(fmt.Sprint(expected.Duration), fmt.Sprint(duration), duration == expected.Duration)
	})

	released, releasedErr := uc.contract.Released(ctx, wallet)
	run("released() == 0", func() domain.CheckOutcome {
		if params.AllowReleased {
			return domain.CheckOutcome{Skipped: true, Expected: "0"}
		}
		if releasedErr != nil {
			return errored("0", releasedErr)
		}
		return compare("0", released.String(), released.Sign() == 0)
	})

	before := saturatingSub(expected.Start, checkMargin)
	run(fmt.Sprintf("vestedAmount(start - %d) == 0", checkMargin), func() domain.CheckOutcome {
		vested, err := uc.contract.VestedAmount(ctx, wallet, before)
		if err != nil {
			return errored("0", err)
		}
		return compare("0", vested.String(), vested.Sign() == 0)
	})

	after := expected.End()
	if after <= math.MaxUint64-checkMargin {
		after += checkMargin
	}
	run(fmt.Sprintf("vestedAmount(end + %d) == initial supply", checkMargin), func() domain.CheckOutcome {
		vested, err := uc.contract.VestedAmount(ctx, wallet, after)
		if err != nil {
			return errored(expected.InitialSupply.String(), err)
		}
		return compare(expected.InitialSupply.String(), vested.String(), vested.Cmp(expected.InitialSupply) == 0)
	})

	run(fmt.Sprintf("release() reverts with %q", domain.NoReleasableAmountReason), func() domain.CheckOutcome {
		want := "revert: " + domain.NoReleasableAmountReason
		if releasedErr != nil {
			return errored(want, releasedErr)
		}
		vested, err := uc.contract.VestedAmount(ctx, wallet, now)
		if err != nil {
			return errored(want, err)
		}
		if due := new(big.Int).Sub(vested, released); due.Sign() > 0 {
			return domain.CheckOutcome{Skipped: true, Expected: want, Actual: fmt.Sprintf("%s releasable", due)}
		}

		err = uc.contract.SimulateRelease(ctx, wallet)
		var revert *domain.RevertError
		switch {
		case err == nil:
			return domain.CheckOutcome{Expected: want, Actual: "no revert"}
		case errors.Is(err, domain.ErrNoReleasableAmount):
			return domain.CheckOutcome{Passed: true, Expected: want, Actual: want}
		case errors.As(err, &revert):
			return domain.CheckOutcome{Expected: want, Actual: "revert: " + revert.Reason}
		default:
			return errored(want, err)
		}
	})

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: "complete", Message: "Checks complete"})

	if failed := report.Failed(); len(failed) > 0 {
		return report, fmt.Errorf("%w: %d of %d", domain.ErrChecksFailed, len(failed), len(report.Outcomes))
	}
	return report, nil
}

// expected resolves the values to check against: explicit params, else the registry record,
// else defaults with the signer as beneficiary. Overrides are applied last.
func (uc *CheckVesting) expected(ctx context.Context, params CheckVestingParams, record *domain.Deployment) (domain.DeploymentParams, error) {
	var p domain.DeploymentParams
	startKnown := true
	switch {
	case params.Expected != nil:
		p = *params.Expected
	case record != nil:
		p = record.Params
	default:
		p = domain.DefaultDeploymentParams(common.Address{}, 0)
		startKnown = false
	}

	o, err := params.Overrides.Parse()
	if err != nil {
		return p, err
	}
	o.Apply(&p)

	if o.Start != nil {
		startKnown = true
	}
	if !startKnown {
		return p, fmt.Errorf("start time unknown for an unrecorded wallet: pass --start")
	}
	if p.Start > math.MaxUint64-p.Duration {
		return p, &domain.ValidationError{Problems: []string{"start + duration overflows a uint64 timestamp"}}
	}
	if p.Beneficiary == (common.Address{}) {
		addr, err := uc.signer.Address(ctx)
		if err != nil {
			return p, fmt.Errorf("beneficiary unknown (pass --beneficiary): %w", err)
		}
		p.Beneficiary = addr
	}
	if p.InitialSupply == nil {
		p.InitialSupply = new(big.Int).Set(domain.DefaultInitialSupply)
	}
	return p, nil
}

func compare(expected, actual string, ok bool) domain.CheckOutcome {
	return domain.CheckOutcome{Passed: ok, Expected: expected, Actual: actual}
}

func errored(expected string, err error) domain.CheckOutcome {
	return domain.CheckOutcome{Expected: expected, Error: err.Error()}
}

func absDiff(a, b uint64) uint64 {
	if a > b {
		return a - b
	}
	return b - a
}

func saturatingSub(a, b uint64) uint64 {
	if a < b {
		return 0
	}
	return a - b
}
