// Package main provides the autocode terminal agent. It wires the
// session bootstrap, the command security policy, the LLM provider and
// the workspace tools into the interactive agent loop.
package main

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/autocode-agent/autocode/internal/config"
	"github.com/autocode-agent/autocode/internal/orchestrator"
	orchadapter "github.com/autocode-agent/autocode/internal/orchestrator/adapter"
	orchmodels "github.com/autocode-agent/autocode/internal/orchestrator/models"
	"github.com/autocode-agent/autocode/internal/provider/claude"
	"github.com/autocode-agent/autocode/internal/provider/gemini"
	provider "github.com/autocode-agent/autocode/internal/provider/models"
	"github.com/autocode-agent/autocode/internal/session"
	"github.com/autocode-agent/autocode/internal/tool/directory"
	"github.com/autocode-agent/autocode/internal/tool/executor"
	"github.com/autocode-agent/autocode/internal/tool/file"
	"github.com/autocode-agent/autocode/internal/tool/fsutil"
	"github.com/autocode-agent/autocode/internal/tool/gitutil"
	"github.com/autocode-agent/autocode/internal/tool/pathutil"
	"github.com/autocode-agent/autocode/internal/tool/search"
	"github.com/autocode-agent/autocode/internal/tool/shell"
	"github.com/autocode-agent/autocode/internal/tool/todo"
	"github.com/autocode-agent/autocode/internal/ui"
	uiservices "github.com/autocode-agent/autocode/internal/ui/services"
	"github.com/charmbracelet/bubbles/spinner"
	"google.golang.org/genai"
)

// Dependencies holds the components required to run the application.
type Dependencies struct {
	Config          *config.Config
	UI              ui.UserInterface
	ProviderFactory func(context.Context) (provider.Provider, error)
	Tools           []orchadapter.Tool
}

func createRealUI() ui.UserInterface {
	channels := ui.NewUIChannels()
	renderer := uiservices.NewGlamourRenderer()
	spinnerFactory := func() spinner.Model {
		return spinner.New(spinner.WithSpinner(spinner.Dot))
	}
	return ui.NewUI(channels, renderer, spinnerFactory)
}

func createRealProviderFactory(cfg *config.Config) func(context.Context) (provider.Provider, error) {
	return func(ctx context.Context) (provider.Provider, error) {
		apiKey, err := session.ResolveAPIKey(cfg.Provider.Name)
		if err != nil {
			return nil, err
		}

		switch cfg.Provider.Name {
		case "gemini":
			genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
			if err != nil {
				return nil, fmt.Errorf("failed to create Gemini client: %w", err)
			}
			return gemini.New(gemini.NewRealGeminiClient(genaiClient), cfg.Provider.Model), nil
		default:
			anthropicClient := anthropic.NewClient(option.WithAPIKey(apiKey))
			return claude.New(claude.NewRealAnthropicClient(anthropicClient), cfg.Provider.Model), nil
		}
	}
}

func createTools(cfg *config.Config, sess *session.Session) []orchadapter.Tool {
	// Instantiate concrete dependencies
	osFS := fsutil.NewOSFileSystem()
	binaryDetector := fsutil.NewBinaryDetector(cfg.Tools.BinaryDetectionSampleSize)
	commandExecutor := executor.NewOSCommandExecutor(cfg)
	todoStore := todo.NewInMemoryTodoStore()
	resolver := pathutil.NewResolver(sess.Root)

	// Gitignore filtering degrades to a no-op outside git repos
	var gitignoreService interface {
		ShouldIgnore(relativePath string) bool
	}
	svc, err := gitutil.NewService(sess.Root, osFS)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize gitignore service: %v\n", err)
		gitignoreService = &gitutil.NoOpService{}
	} else {
		gitignoreService = svc
	}

	// Instantiate all tools with their dependencies
	readFileTool := file.NewReadFileTool(osFS, binaryDetector, cfg, resolver)
	writeFileTool := file.NewWriteFileTool(osFS, binaryDetector, cfg, resolver)
	editFileTool := file.NewEditFileTool(osFS, cfg, resolver)
	listDirectoryTool := directory.NewListDirectoryTool(osFS, gitignoreService, cfg, resolver)
	findFileTool := directory.NewFindFileTool(osFS, gitignoreService, cfg, resolver)
	searchContentTool := search.NewSearchContentTool(osFS, commandExecutor, cfg, resolver)
	shellTool := shell.NewShellTool(commandExecutor, cfg, resolver)
	readTodosTool := todo.NewReadTodosTool(todoStore, cfg)
	writeTodosTool := todo.NewWriteTodosTool(todoStore, cfg)

	return []orchadapter.Tool{
		orchadapter.NewReadFile(readFileTool),
		orchadapter.NewWriteFile(writeFileTool),
		orchadapter.NewEditFile(editFileTool),
		orchadapter.NewListDirectory(listDirectoryTool),
		orchadapter.NewFindFile(findFileTool),
		orchadapter.NewSearchContent(searchContentTool),
		orchadapter.NewRunShell(shellTool),
		orchadapter.NewReadTodos(readTodosTool),
		orchadapter.NewWriteTodos(writeTodosTool),
	}
}

func main() {
	// Load configuration (defaults + ~/.config/autocode/config.json)
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration.\n")
		cfg = config.DefaultConfig()
	}

	deps := Dependencies{
		Config:          cfg,
		UI:              createRealUI(),
		ProviderFactory: createRealProviderFactory(cfg),
		Tools:           nil, // Created in runInteractive once the session exists
	}

	// The UI manages its own lifecycle via Ctrl+C, so no external
	// cancellation is needed in interactive mode.
	runInteractive(context.Background(), deps)
}

func runInteractive(ctx context.Context, deps Dependencies) {
	userInterface := deps.UI

	// Create cancellable context for goroutines
	agentCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup

	// Provider shared between goroutines (providers are thread-safe)
	var providerClient provider.Provider
	providerReady := make(chan struct{})

	// Goroutine #1: Initialize & REPL
	wg.Add(1)
	go func() {
		defer wg.Done()

		<-userInterface.Ready() // Wait for UI to be ready

		// === WORKSPACE INITIALIZATION ===
		userInterface.WriteStatus("thinking", "Initializing workspace...")

		workspaceRoot, err := os.Getwd()
		if err != nil {
			userInterface.WriteStatus("error", "Initialization failed")
			userInterface.WriteMessage(fmt.Sprintf("Error: failed to get working directory: %v", err))
			userInterface.WriteMessage("The application cannot start. Press Ctrl+C to exit.")
			return // DEGRADED MODE: UI runs but app doesn't start
		}

		sess, err := session.New(workspaceRoot, deps.Config)
		if err != nil {
			userInterface.WriteStatus("error", "Initialization failed")
			userInterface.WriteMessage(fmt.Sprintf("Error: failed to initialize session: %v", err))
			userInterface.WriteMessage("The application cannot start. Press Ctrl+C to exit.")
			return
		}

		// Write the settings artifact so sandboxed subprocess runners
		// pick up the hook and permission configuration.
		if _, err := session.WriteSettings(sess.Root); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to write settings: %v\n", err)
		}

		toolList := createTools(deps.Config, sess)

		// === PROVIDER INITIALIZATION ===
		userInterface.WriteStatus("thinking", "Initializing AI...")

		p, err := deps.ProviderFactory(agentCtx)
		if err != nil {
			userInterface.WriteStatus("error", "AI initialization failed")
			userInterface.WriteMessage(fmt.Sprintf("Error initializing provider: %v", err))
			userInterface.WriteMessage("The application cannot start. Press Ctrl+C to exit.")
			return // DEGRADED MODE
		}

		// Share provider with other goroutines
		providerClient = p
		close(providerReady)

		// Set initial model in status bar
		userInterface.SetModel(p.GetModel())

		// === AGENT INITIALIZATION ===
		policyService := orchestrator.NewPolicyService(sess.Policy, orchmodels.ToolPolicy{})
		orch := orchestrator.New(deps.Config, providerClient, policyService, userInterface, toolList)

		userInterface.WriteStatus("ready", "Ready")

		// === REPL LOOP (with cancellation) ===
		for {
			select {
			case <-agentCtx.Done():
				return // Exit on cancellation
			default:
				goal, err := userInterface.ReadInput(agentCtx, "What would you like to do?")
				if err != nil {
					return // UI closed or context cancelled
				}

				if err := orch.Run(agentCtx, goal); err != nil {
					userInterface.WriteMessage(fmt.Sprintf("Error: %v", err))
				}

				userInterface.WriteStatus("ready", "Ready")
			}
		}
	}()

	// Goroutine #2: Command handler (with cancellation)
	wg.Add(1)
	go func() {
		defer wg.Done()

		for {
			select {
			case <-agentCtx.Done():
				return
			case cmd := <-userInterface.Commands():
				switch cmd.Type {
				case "list_models":
					// Wait for provider to be ready
					select {
					case <-providerReady:
						models, err := providerClient.ListModels(agentCtx)
						if err != nil {
							userInterface.WriteMessage(fmt.Sprintf("Error listing models: %v", err))
						} else {
							userInterface.WriteModelList(models)
						}
					case <-agentCtx.Done():
						return
					}
				case "switch_model":
					// Wait for provider to be ready
					select {
					case <-providerReady:
						model := cmd.Args["model"]
						if err := providerClient.SetModel(model); err != nil {
							userInterface.WriteMessage(fmt.Sprintf("Error switching model: %v", err))
						} else {
							userInterface.SetModel(model)
							userInterface.WriteMessage(fmt.Sprintf("Switched to model: %s", model))
						}
					case <-agentCtx.Done():
						return
					}
				}
			}
		}
	}()

	// Run UI in main thread (blocks until exit)
	if err := userInterface.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running UI: %v\n", err)
		os.Exit(1)
	}

	// UI exited, trigger shutdown
	cancel()
	wg.Wait()
}
