package app

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kelseymakesthings/auto-outfit/policy"
	"github.com/kelseymakesthings/auto-outfit/repository"
	"github.com/kelseymakesthings/auto-outfit/service"
)

const (
	defaultClosetFile = "closet.json"
	defaultImagesPath = "images"
	defaultOutputPath = "outfit.png"
	defaultStylePath  = "style.yaml"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	pieceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

// options holds the parsed command line flags
type options struct {
	warmth    int
	comfort   int
	fancy     bool
	include   string
	closet    string
	images    string
	output    string
	style     string
	seed      int64
	noDisplay bool
}

// envDefault returns the environment value for key, or fallback when unset
func envDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// NewRootCommand builds the auto-outfit command
func NewRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "auto-outfit",
		Short:        "Generate a random outfit according to kelsey makes things's style rules",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.warmth, "warmth", "w", 0, "specific warmth level for bottom and jacket (1-3)")
	flags.IntVarP(&opts.comfort, "comfort", "c", 0, "minimum comfort level for all pieces (1-3)")
	flags.BoolVarP(&opts.fancy, "fancy", "f", false, "if specified, all pieces must be fancy")
	flags.StringVarP(&opts.include, "include", "i", "", "required piece name to include")
	flags.StringVar(&opts.closet, "closet", envDefault("CLOSET_FILE", defaultClosetFile), "path to the closet catalog file")
	flags.StringVar(&opts.images, "images", envDefault("IMAGES_PATH", defaultImagesPath), "directory containing piece images")
	flags.StringVar(&opts.output, "output", envDefault("OUTFIT_OUTPUT", defaultOutputPath), "path for the composed outfit image")
	flags.StringVar(&opts.style, "style", envDefault("STYLE_CONFIG", defaultStylePath), "path to the style rules file")
	flags.Int64Var(&opts.seed, "seed", 0, "random seed for a reproducible outfit (0 seeds from the clock)")
	flags.BoolVar(&opts.noDisplay, "no-display", false, "print the outfit without composing the image")

	return cmd
}

// run wires the repository, policy and services together and generates one
// outfit. Configuration errors surface here before any search starts.
func run(opts *options) error {
	closetRepo := repository.NewClosetRepository(opts.closet)
	closet, err := closetRepo.Load()
	if err != nil {
		return err
	}

	style, err := policy.LoadStyleConfig(opts.style)
	if err != nil {
		return err
	}

	policyEngine, err := policy.NewEngine(policy.Config{
		WarmthLevel:   opts.warmth,
		ComfortLevel:  opts.comfort,
		Fancy:         opts.fancy,
		RequiredPiece: opts.include,
	}, closet, style)
	if err != nil {
		return err
	}

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	outfitService := service.NewOutfitService(policyEngine, closet, rng)
	outfit, err := outfitService.Generate()
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("Your outfit for today:"), pieceStyle.Render(strings.Join(outfit.Names(), ", ")))

	if opts.noDisplay {
		return nil
	}

	displayService := service.NewDisplayService(opts.images, opts.output)
	outputPath, err := displayService.Render(outfit)
	if err != nil {
		return err
	}
	fmt.Println(pieceStyle.Render("Saved to " + outputPath))
	return nil
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().Execute()
}
