package api

import (
	"fmt"
	"strings"
	"testing"

	"stardrift/internal/camera"
	"stardrift/internal/input"
	"stardrift/internal/input/key"
	"stardrift/internal/logging"
	"stardrift/internal/options"
	"stardrift/internal/script"
	"stardrift/internal/sim"
	"stardrift/internal/sprite"
	"stardrift/internal/world"
)

type fakeConsole struct {
	lines []string
}

func (c *fakeConsole) InsertResult(s string) {
	c.lines = append(c.lines, s)
}

type fakeHUD struct {
	alerts []string
}

func (h *fakeHUD) AddAlert(format string, args ...any) {
	h.alerts = append(h.alerts, fmt.Sprintf(format, args...))
}

func newTestContext() (*Context, *fakeConsole, *fakeHUD) {
	sprites := sprite.NewManager()
	con := &fakeConsole{}
	hud := &fakeHUD{}
	ctx := &Context{
		Log:      logging.Nop(),
		Sprites:  sprites,
		World:    world.New(),
		Camera:   camera.New(sprites),
		Sim:      sim.New(),
		Options:  options.NewStore(),
		Console:  con,
		HUD:      hud,
		Bindings: input.NewBindings(),
	}
	return ctx, con, hud
}

func newTestRuntime(t *testing.T) (*script.Runtime, *Context, *fakeConsole, *fakeHUD) {
	t.Helper()
	ctx, con, hud := newTestContext()
	r := script.New(logging.Nop(), Default(ctx)...)
	t.Cleanup(func() {
		if r.Initialized() {
			r.Close()
		}
	})
	return r, ctx, con, hud
}

func TestEcho(t *testing.T) {
	r, _, con, _ := newTestRuntime(t)
	if err := r.Run(`Stardrift.echo("hello, sector")`); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(con.lines) != 1 || con.lines[0] != "hello, sector" {
		t.Errorf("console lines = %v", con.lines)
	}
}

func TestAddAlert(t *testing.T) {
	r, _, _, hud := newTestRuntime(t)
	if err := r.Run(`Stardrift.addAlert("low fuel")`); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(hud.alerts) != 1 || hud.alerts[0] != "low fuel" {
		t.Errorf("alerts = %v", hud.alerts)
	}
}

func TestPauseRoundTrip(t *testing.T) {
	r, ctx, _, _ := newTestRuntime(t)

	if err := r.Run(`Stardrift.pause()`); err != nil {
		t.Fatalf("pause: %v", err)
	}
	if !ctx.Sim.IsPaused() {
		t.Fatal("simulation should be paused")
	}

	// ispaused reports through the Lua number convention.
	if err := r.Run(`if Stardrift.ispaused() ~= 1 then error("not paused") end`); err != nil {
		t.Errorf("ispaused should report 1 while paused: %v", err)
	}

	if err := r.Run(`Stardrift.unpause()`); err != nil {
		t.Fatalf("unpause: %v", err)
	}
	if ctx.Sim.IsPaused() {
		t.Error("simulation should be unpaused")
	}
	if err := r.Run(`if Stardrift.ispaused() ~= 0 then error("still paused") end`); err != nil {
		t.Errorf("ispaused should report 0 after unpause: %v", err)
	}
}

func TestOptions(t *testing.T) {
	r, ctx, _, _ := newTestRuntime(t)

	if err := r.Run(`Stardrift.setoption("timing/mouse-fade", 750)`); err != nil {
		t.Fatalf("setoption: %v", err)
	}
	if got := ctx.Options.Get("timing/mouse-fade"); got != "750" {
		t.Errorf("option = %q, want 750", got)
	}

	if err := r.Run(`if Stardrift.getoption("timing/mouse-fade") ~= "750" then error("mismatch") end`); err != nil {
		t.Errorf("getoption round trip: %v", err)
	}
	if err := r.Run(`if Stardrift.getoption("no/such/path") ~= "" then error("unset should read empty") end`); err != nil {
		t.Errorf("unset option: %v", err)
	}
}

func TestRegisterKeyDispatch(t *testing.T) {
	r, ctx, _, _ := newTestRuntime(t)

	if err := r.Run(`Stardrift.RegisterKey("p", Stardrift.KEYDOWN, "Stardrift.pause()")`); err != nil {
		t.Fatalf("RegisterKey: %v", err)
	}
	if ctx.Bindings.Len() != 1 {
		t.Fatalf("bindings = %d, want 1", ctx.Bindings.Len())
	}

	ctx.Bindings.Dispatch([]input.Event{input.NewKeyEvent(key.StateDown, 'p')}, r, func(e input.Event, err error) {
		t.Errorf("dispatch %v: %v", e, err)
	})
	if !ctx.Sim.IsPaused() {
		t.Error("bound command should have paused the simulation")
	}

	// The up edge for the same key carries no binding.
	ctx.Sim.Unpause()
	ctx.Bindings.Dispatch([]input.Event{input.NewKeyEvent(key.StateUp, 'p')}, r, nil)
	if ctx.Sim.IsPaused() {
		t.Error("up edge should not trigger a down binding")
	}
}

func TestRegisterKeyNumericCode(t *testing.T) {
	r, ctx, _, _ := newTestRuntime(t)

	src := fmt.Sprintf(`Stardrift.RegisterKey(%d, Stardrift.KEYTYPED, "Stardrift.echo('esc')")`, int(key.Escape))
	if err := r.Run(src); err != nil {
		t.Fatalf("RegisterKey: %v", err)
	}
	if _, ok := ctx.Bindings.Lookup(input.NewKeyEvent(key.StateTyped, key.Escape)); !ok {
		t.Error("numeric code registration missing")
	}
}

func TestRegisterKeyArity(t *testing.T) {
	r, _, _, _ := newTestRuntime(t)

	err := r.Run(`Stardrift.RegisterKey("p")`)
	if err == nil {
		t.Fatal("RegisterKey with 1 argument should fail")
	}
	if !strings.Contains(err.Error(), "Got 1 arguments expected 3 (Key, State, Command)") {
		t.Errorf("arity diagnostic = %v", err)
	}
}

func TestUnRegisterKey(t *testing.T) {
	r, ctx, _, _ := newTestRuntime(t)

	if err := r.Run(`Stardrift.RegisterKey("p", Stardrift.KEYDOWN, "Stardrift.pause()")`); err != nil {
		t.Fatalf("RegisterKey: %v", err)
	}
	if err := r.Run(`Stardrift.UnRegisterKey("p", Stardrift.KEYDOWN)`); err != nil {
		t.Fatalf("UnRegisterKey: %v", err)
	}
	if ctx.Bindings.Len() != 0 {
		t.Errorf("bindings = %d after unregister, want 0", ctx.Bindings.Len())
	}

	// Unbinding an unbound pair is a no-op.
	if err := r.Run(`Stardrift.UnRegisterKey("q", Stardrift.KEYUP)`); err != nil {
		t.Errorf("unbound UnRegisterKey: %v", err)
	}
}

func TestRegisterKeyUnknownName(t *testing.T) {
	r, _, _, _ := newTestRuntime(t)
	if err := r.Run(`Stardrift.RegisterKey("notakey", Stardrift.KEYDOWN, "x()")`); err == nil {
		t.Error("unknown key name should fail")
	}
}

func TestCameraFunctions(t *testing.T) {
	r, ctx, _, _ := newTestRuntime(t)

	if err := r.Run(`Stardrift.moveCamera(10, -5)`); err != nil {
		t.Fatalf("moveCamera: %v", err)
	}
	if p := ctx.Camera.FocusCoordinate(); p.X != 10 || p.Y != -5 {
		t.Errorf("focus = %v after move", p)
	}

	if err := r.Run(`Stardrift.focusCamera(100, 200)`); err != nil {
		t.Fatalf("focusCamera(x, y): %v", err)
	}
	if p := ctx.Camera.FocusCoordinate(); p.X != 100 || p.Y != 200 {
		t.Errorf("focus = %v after focusCamera", p)
	}

	if err := r.Run(`x, y = Stardrift.getCamera()
if x ~= 100 or y ~= 200 then error("getCamera mismatch") end`); err != nil {
		t.Errorf("getCamera: %v", err)
	}

	if err := r.Run(`Stardrift.focusCamera(999)`); err == nil {
		t.Error("focusCamera on unknown sprite should fail")
	}

	if err := r.Run(`Stardrift.shakeCamera(4, 10, 0, 0)`); err != nil {
		t.Fatalf("shakeCamera: %v", err)
	}
	if !ctx.Camera.Shaking() {
		t.Error("camera should be shaking")
	}
}

func TestFocusCameraOnSprite(t *testing.T) {
	r, ctx, _, _ := newTestRuntime(t)

	ship := sprite.NewShip("Vespa", "scout")
	ship.SetPosition(sprite.Point{X: 7, Y: 9})
	id := ctx.Sprites.Add(ship)

	if err := r.Run(fmt.Sprintf(`Stardrift.focusCamera(%d)`, id)); err != nil {
		t.Fatalf("focusCamera: %v", err)
	}
	ctx.Camera.Update()
	if p := ctx.Camera.FocusCoordinate(); p.X != 7 || p.Y != 9 {
		t.Errorf("focus = %v, want ship position", p)
	}
}

func TestSpriteHandles(t *testing.T) {
	r, ctx, _, _ := newTestRuntime(t)

	ship := sprite.NewShip("Vespa", "scout")
	ship.SetHull(80)
	id := ctx.Sprites.Add(ship)
	ctx.Sprites.Add(sprite.NewPlanet("Ves", sprite.Point{X: 50, Y: 0}))

	src := fmt.Sprintf(`
s = Stardrift.getSprite(%d)
if s:GetID() ~= %d then error("id mismatch") end
if s:GetName() ~= "Vespa" then error("name mismatch") end
if s:GetModelName() ~= "scout" then error("model mismatch") end
if s:GetHull() ~= 80 then error("hull mismatch") end
if s:GetType() ~= "ship" then error("type mismatch") end
s:SetHull(55)
`, id, id)
	if err := r.Run(src); err != nil {
		t.Fatalf("handle methods: %v", err)
	}
	if ship.Hull() != 55 {
		t.Errorf("hull = %d after SetHull, want 55", ship.Hull())
	}
}

func TestStaleHandleFailsLoudly(t *testing.T) {
	r, ctx, _, _ := newTestRuntime(t)

	id := ctx.Sprites.Add(sprite.NewShip("Vespa", "scout"))
	if err := r.Run(fmt.Sprintf(`s = Stardrift.getSprite(%d)`, id)); err != nil {
		t.Fatalf("getSprite: %v", err)
	}

	ctx.Sprites.Remove(id)

	err := r.Run(`s:GetName()`)
	if err == nil {
		t.Fatal("stale handle should fail")
	}
	if !strings.Contains(err.Error(), "no such sprite ID") {
		t.Errorf("stale diagnostic = %v", err)
	}
}

func TestGetSpriteUnknownID(t *testing.T) {
	r, _, _, _ := newTestRuntime(t)
	if err := r.Run(`Stardrift.getSprite(42)`); err == nil {
		t.Error("getSprite on unknown ID should fail")
	}
}

func TestSpriteQueries(t *testing.T) {
	r, ctx, _, _ := newTestRuntime(t)

	player := sprite.NewPlayer("Hornet", "fighter")
	ctx.Sprites.Add(player)

	near := sprite.NewShip("Close", "scout")
	near.SetPosition(sprite.Point{X: 10, Y: 0})
	ctx.Sprites.Add(near)

	far := sprite.NewShip("Far", "scout")
	far.SetPosition(sprite.Point{X: 1000, Y: 0})
	ctx.Sprites.Add(far)

	ctx.Sprites.Add(sprite.NewPlanet("Ves", sprite.Point{X: 30, Y: 40}))

	src := `
if #Stardrift.ships() ~= 3 then error("ship count") end
if #Stardrift.planets() ~= 1 then error("planet count") end

p = Stardrift.player()
if p:GetName() ~= "Hornet" then error("player name") end
if p:GetType() ~= "player" then error("player type") end

n = Stardrift.nearestShip(p, 100)
if n:GetName() ~= "Close" then error("nearest ship") end

if Stardrift.nearestShip(p, 5) ~= nil then error("radius should exclude") end

pl = Stardrift.nearestPlanet(p, 100)
if pl:GetName() ~= "Ves" then error("nearest planet") end
`
	if err := r.Run(src); err != nil {
		t.Fatalf("queries: %v", err)
	}
}

func TestPlayerNilWhenAbsent(t *testing.T) {
	r, _, _, _ := newTestRuntime(t)
	if err := r.Run(`if Stardrift.player() ~= nil then error("expected nil") end`); err != nil {
		t.Errorf("player: %v", err)
	}
}

func TestModelInfoRoundTrip(t *testing.T) {
	r, ctx, _, _ := newTestRuntime(t)
	ctx.World.Models.Add("scout", world.Model{
		Name: "scout", Image: "scout.png", Engine: "ion",
		Mass: 5, Thrust: 10, Rotation: 3, MaxSpeed: 8, MaxHull: 100,
	})

	src := `
info = Stardrift.getModelInfo("scout")
if info.Image ~= "scout.png" then error("image") end
if info.Mass ~= 5 then error("mass") end
info.Mass = 7
info.MaxHull = 150
info.Image = "ignored.png"
Stardrift.setModelInfo(info)
`
	if err := r.Run(src); err != nil {
		t.Fatalf("round trip: %v", err)
	}

	m, _ := ctx.World.Models.Get("scout")
	if m.Mass != 7 || m.MaxHull != 150 {
		t.Errorf("stats not applied: %+v", m)
	}
	if m.Image != "scout.png" || m.Engine != "ion" {
		t.Errorf("load-time fields should survive a set: %+v", m)
	}
}

func TestSetInfoUnknownNameIsNoOp(t *testing.T) {
	r, ctx, _, _ := newTestRuntime(t)

	if err := r.Run(`Stardrift.setModelInfo({Name = "ghost", Mass = 1})`); err != nil {
		t.Fatalf("set on unknown name should not fail: %v", err)
	}
	if ctx.World.Models.Len() != 0 {
		t.Error("set must not create entities")
	}
}

func TestSetInfoMissingFieldFails(t *testing.T) {
	r, ctx, _, _ := newTestRuntime(t)
	ctx.World.Models.Add("scout", world.Model{Name: "scout", Mass: 5})

	err := r.Run(`Stardrift.setModelInfo({Name = "scout", Mass = "heavy"})`)
	if err == nil {
		t.Error("mistyped field should fail")
	}
	err = r.Run(`Stardrift.setModelInfo({Name = "scout"})`)
	if err == nil {
		t.Error("missing fields should fail")
	}

	m, _ := ctx.World.Models.Get("scout")
	if m.Mass != 5 {
		t.Errorf("failed set must not change the entity: %+v", m)
	}
}

func TestPlanetInfoViaSprite(t *testing.T) {
	r, ctx, _, _ := newTestRuntime(t)
	ctx.World.Planets.Add("Ves", world.Planet{
		Name: "Ves", Alliance: "Terran", Traffic: 12, Militia: 3,
		Landable: true, Influence: 900, Technologies: []string{"basics"},
	})
	id := ctx.Sprites.Add(sprite.NewPlanet("Ves", sprite.Point{}))
	shipID := ctx.Sprites.Add(sprite.NewShip("Vespa", "scout"))

	src := fmt.Sprintf(`
info = Stardrift.getPlanetInfo(%d)
if info.Alliance ~= "Terran" then error("alliance") end
if info.Influence ~= 900 then error("influence") end
if #info.Technologies ~= 1 then error("technologies") end
info.Traffic = 20
info.Landable = false
Stardrift.setPlanetInfo(info)
`, id)
	if err := r.Run(src); err != nil {
		t.Fatalf("round trip: %v", err)
	}

	p, _ := ctx.World.Planets.Get("Ves")
	if p.Traffic != 20 || p.Landable {
		t.Errorf("profile not applied: %+v", p)
	}
	if p.Influence != 900 || len(p.Technologies) != 1 {
		t.Errorf("load-time fields should survive a set: %+v", p)
	}

	if err := r.Run(fmt.Sprintf(`Stardrift.getPlanetInfo(%d)`, shipID)); err == nil {
		t.Error("getPlanetInfo on a ship sprite should fail")
	}
}

func TestWeaponAndEngineInfo(t *testing.T) {
	r, ctx, _, _ := newTestRuntime(t)
	ctx.World.Weapons.Add("laser", world.Weapon{
		Name: "laser", Image: "laser.png", Sound: "zap",
		Payload: 10, Velocity: 50, FireDelay: 20,
	})
	ctx.World.Engines.Add("ion", world.Engine{
		Name: "ion", ThrustSound: "hum", Force: 120, MSRP: 500,
	})

	src := `
w = Stardrift.getWeaponInfo("laser")
w.Payload = 15
Stardrift.setWeaponInfo(w)

e = Stardrift.getEngineInfo("ion")
e.Force = 150
e["Fold Drive"] = true
Stardrift.setEngineInfo(e)
`
	if err := r.Run(src); err != nil {
		t.Fatalf("round trip: %v", err)
	}

	w, _ := ctx.World.Weapons.Get("laser")
	if w.Payload != 15 || w.Sound != "zap" {
		t.Errorf("weapon: %+v", w)
	}
	e, _ := ctx.World.Engines.Get("ion")
	if e.Force != 150 || !e.FoldDrive || e.ThrustSound != "hum" {
		t.Errorf("engine: %+v", e)
	}
}

func TestTechnologyInfo(t *testing.T) {
	r, ctx, _, _ := newTestRuntime(t)
	ctx.World.Technologies.Add("basics", world.Technology{
		Name:    "basics",
		Models:  []string{"scout", "freighter"},
		Weapons: []string{"laser"},
		Engines: []string{"ion"},
	})

	src := `
models, weapons, engines = Stardrift.getTechnologyInfo("basics")
if #models ~= 2 then error("models") end
if #weapons ~= 1 then error("weapons") end
if #engines ~= 1 then error("engines") end
if models[1] ~= "scout" then error("order") end
`
	if err := r.Run(src); err != nil {
		t.Fatalf("getTechnologyInfo: %v", err)
	}

	if err := r.Run(`Stardrift.setTechnologyInfo({Name = "basics"})`); err == nil {
		t.Error("setTechnologyInfo should report not implemented")
	}
}

func TestAllianceInfo(t *testing.T) {
	r, ctx, _, _ := newTestRuntime(t)
	ctx.World.Alliances.Add("Terran", world.Alliance{Name: "Terran", Aggression: 0.2, Currency: "credit"})

	src := `
a = Stardrift.getAllianceInfo("Terran")
a.Aggression = 0.5
Stardrift.setAllianceInfo(a)
`
	if err := r.Run(src); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	a, _ := ctx.World.Alliances.Get("Terran")
	if a.Aggression != 0.5 || a.Currency != "credit" {
		t.Errorf("alliance: %+v", a)
	}
}

func TestNameListings(t *testing.T) {
	r, ctx, _, _ := newTestRuntime(t)
	ctx.World.Models.Add("scout", world.Model{Name: "scout"})
	ctx.World.Models.Add("freighter", world.Model{Name: "freighter"})

	if err := r.Run(`
names = Stardrift.models()
if #names ~= 2 then error("count") end
if names[1] ~= "scout" or names[2] ~= "freighter" then error("order") end
`); err != nil {
		t.Errorf("models listing: %v", err)
	}
}
