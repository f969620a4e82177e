package cmds

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-cpuid/cpuid/pkg/config"
	"github.com/go-cpuid/cpuid/pkg/cpuid"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
)

// reporter prints the decoded views of one processor to a terminal or
// a pipe.
type reporter struct {
	w     io.Writer
	color bool
}

func newReporter(conf *config.Config) *reporter {
	color := !conf.DisableColors && isatty.IsTerminal(os.Stdout.Fd())
	var w io.Writer = os.Stdout
	if color {
		w = colorable.NewColorableStdout()
	}
	return &reporter{w: w, color: color}
}

func (r *reporter) section(title string) {
	if r.color {
		fmt.Fprintf(r.w, "\n\x1b[1m%s\x1b[0m\n", title)
	} else {
		fmt.Fprintf(r.w, "\n%s\n", title)
	}
}

// table renders rows with tablewriter. An empty header produces a
// plain key/value listing.
func (r *reporter) table(header []string, rows [][]string) {
	tbl := tablewriter.NewWriter(r.w)
	tbl.SetBorder(false)
	tbl.SetAutoWrapText(false)
	tbl.SetAlignment(tablewriter.ALIGN_LEFT)
	tbl.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	if len(header) > 0 {
		tbl.SetHeader(header)
		if r.color {
			colors := make([]tablewriter.Colors, len(header))
			for i := range colors {
				colors[i] = tablewriter.Colors{tablewriter.Bold}
			}
			tbl.SetHeaderColor(colors...)
		}
	}
	tbl.AppendBulk(rows)
	tbl.Render()
}

func (r *reporter) report(id *cpuid.CPUID) {
	r.printIdentity(id)
	r.printFeatures(id)
	r.printCaches(id)
	r.printMonitorMwait(id)
	r.printThermalPower(id)
	r.printPerfMonitoring(id)
	r.printTopology(id)
	r.printExtendedState(id)
	r.printRdt(id)
	r.printSgx(id)
	r.printClock(id)
	r.printAddressTranslation(id)
	r.printAmdCaches(id)
	r.printApm(id)
	r.printCapacity(id)
	r.printSvm(id)
	r.printMemoryEncryption(id)
}

func (r *reporter) printIdentity(id *cpuid.CPUID) {
	r.section("Processor")
	rows := [][]string{}
	if vi, ok := id.VendorInfo(); ok {
		rows = append(rows, []string{"vendor", vi.String()})
	}
	if bs, ok := id.ProcessorBrandString(); ok {
		rows = append(rows, []string{"brand", strings.TrimSpace(bs.String())})
	}
	if fi, ok := id.FeatureInfo(); ok {
		rows = append(rows,
			[]string{"family", fmt.Sprintf("%#x", fi.FamilyID())},
			[]string{"model", fmt.Sprintf("%#x", fi.ModelID())},
			[]string{"stepping", fmt.Sprintf("%d", fi.SteppingID())},
			[]string{"clflush line size", fmt.Sprintf("%d", fi.CLFLUSHLineSize())},
			[]string{"max logical processor ids", fmt.Sprintf("%d", fi.MaxLogicalProcessorIDs())},
			[]string{"initial apic id", fmt.Sprintf("%d", fi.InitialLocalApicID())},
		)
	}
	if ps, ok := id.ProcessorSerial(); ok && ps.Serial() != 0 {
		rows = append(rows, []string{"serial", fmt.Sprintf("%#016x", ps.Serial())})
	}
	rows = append(rows,
		[]string{"max leaf", fmt.Sprintf("%#x", id.MaxLeaf())},
		[]string{"max extended leaf", fmt.Sprintf("%#x", id.MaxExtendedLeaf())},
	)
	r.table(nil, rows)
}

// printFeatures lists every supported feature flag the way
// /proc/cpuinfo does, wrapped into lines.
func (r *reporter) printFeatures(id *cpuid.CPUID) {
	flags := featureList(id)
	if len(flags) == 0 {
		return
	}
	r.section("Features")
	const perLine = 8
	for i := 0; i < len(flags); i += perLine {
		end := i + perLine
		if end > len(flags) {
			end = len(flags)
		}
		fmt.Fprintf(r.w, "  %s\n", strings.Join(flags[i:end], " "))
	}
}

func (r *reporter) printCaches(id *cpuid.CPUID) {
	if iter, ok := id.CacheParameters(); ok {
		var rows [][]string
		for {
			c, ok := iter.Next()
			if !ok {
				break
			}
			rows = append(rows, []string{
				fmt.Sprintf("L%d", c.Level()),
				c.Type().String(),
				formatSize(c.Size()),
				assocString(int(c.Associativity()), c.FullyAssociative()),
				fmt.Sprintf("%d B", c.CoherencyLineSize()),
				fmt.Sprintf("%d", c.Sets()),
				fmt.Sprintf("%d", c.MaxCoresForCache()),
			})
		}
		if len(rows) > 0 {
			r.section("Cache hierarchy")
			r.table([]string{"Level", "Type", "Size", "Assoc", "Line", "Sets", "Shared by"}, rows)
		}
	}

	if ci, ok := id.CacheDescriptors(); ok {
		var rows [][]string
		for _, d := range ci.Descriptors() {
			desc := d.Desc
			if !d.Known {
				desc = "unknown descriptor"
			}
			rows = append(rows, []string{fmt.Sprintf("%#02x", d.Raw), desc})
		}
		if len(rows) > 0 {
			r.section("Cache and TLB descriptors")
			r.table([]string{"Byte", "Meaning"}, rows)
		}
	}
}

func (r *reporter) printMonitorMwait(id *cpuid.CPUID) {
	m, ok := id.MonitorMwaitInfo()
	if !ok {
		return
	}
	r.section("MONITOR/MWAIT")
	rows := [][]string{
		{"smallest monitor line", fmt.Sprintf("%d B", m.SmallestMonitorLine())},
		{"largest monitor line", fmt.Sprintf("%d B", m.LargestMonitorLine())},
		{"extensions", fmt.Sprintf("%t", m.ExtensionsSupported())},
		{"interrupts as break event", fmt.Sprintf("%t", m.InterruptsAsBreakEvent())},
	}
	var states []string
	for n := uint(0); n < 8; n++ {
		states = append(states, fmt.Sprintf("C%d:%d", n, m.SupportedCStates(n)))
	}
	rows = append(rows, []string{"mwait sub-states", strings.Join(states, " ")})
	r.table(nil, rows)
}

func (r *reporter) printThermalPower(id *cpuid.CPUID) {
	t, ok := id.ThermalPowerInfo()
	if !ok {
		return
	}
	r.section("Thermal and power management")
	r.table(nil, [][]string{
		{"digital thermal sensor", fmt.Sprintf("%t", t.HasDTS())},
		{"turbo boost", fmt.Sprintf("%t", t.HasTurboBoost())},
		{"always running apic timer", fmt.Sprintf("%t", t.HasARAT())},
		{"power limit notification", fmt.Sprintf("%t", t.HasPLN())},
		{"package thermal management", fmt.Sprintf("%t", t.HasPTM())},
		{"hardware managed p-states", fmt.Sprintf("%t", t.HasHWP())},
		{"dts interrupt thresholds", fmt.Sprintf("%d", t.DTSIrqThreshold())},
		{"hw coordination feedback", fmt.Sprintf("%t", t.HasHwCoordFeedback())},
		{"energy bias preference", fmt.Sprintf("%t", t.HasEnergyBiasPref())},
	})
}

func (r *reporter) printPerfMonitoring(id *cpuid.CPUID) {
	p, ok := id.PerformanceMonitoringInfo()
	if !ok {
		return
	}
	r.section("Performance monitoring")
	r.table(nil, [][]string{
		{"version", fmt.Sprintf("%d", p.VersionID())},
		{"gp counters per logical cpu", fmt.Sprintf("%d", p.NumberOfCounters())},
		{"gp counter width", fmt.Sprintf("%d bits", p.CounterBitWidth())},
		{"fixed counters", fmt.Sprintf("%d", p.FixedFunctionCounters())},
		{"fixed counter width", fmt.Sprintf("%d bits", p.FixedFunctionCounterBitWidth())},
	})
}

func (r *reporter) printTopology(id *cpuid.CPUID) {
	iter, ok := id.ExtendedTopology()
	if !ok {
		return
	}
	var rows [][]string
	for {
		l, ok := iter.Next()
		if !ok {
			break
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", l.LevelNumber()),
			l.LevelType().String(),
			fmt.Sprintf("%d", l.Processors()),
			fmt.Sprintf("%d", l.ShiftRightForNextApicID()),
			fmt.Sprintf("%d", l.X2ApicID()),
		})
	}
	if len(rows) == 0 {
		return
	}
	r.section("Topology")
	r.table([]string{"Level", "Type", "Processors", "APIC shift", "x2APIC id"}, rows)
}

func (r *reporter) printExtendedState(id *cpuid.CPUID) {
	e, ok := id.ExtendedStateInfo()
	if !ok {
		return
	}
	r.section("Extended state (XSAVE)")
	r.table(nil, [][]string{
		{"xcr0 supported mask", fmt.Sprintf("%#x", e.Xcr0Supported())},
		{"area size, enabled features", fmt.Sprintf("%d B", e.XsaveAreaSizeEnabledFeatures())},
		{"area size, all features", fmt.Sprintf("%d B", e.XsaveAreaSizeSupportedFeatures())},
		{"xsaveopt", fmt.Sprintf("%t", e.HasXsaveopt())},
		{"xsavec", fmt.Sprintf("%t", e.HasXsavec())},
		{"xsaves/xrstors", fmt.Sprintf("%t", e.HasXsavesXrstors())},
	})

	var rows [][]string
	iter := e.Iter()
	for {
		s, ok := iter.Next()
		if !ok {
			break
		}
		reg := "XCR0"
		if s.IsInIA32Xss() {
			reg = "IA32_XSS"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", s.Subleaf),
			fmt.Sprintf("%d B", s.Size()),
			fmt.Sprintf("%d", s.Offset()),
			reg,
		})
	}
	if len(rows) > 0 {
		r.table([]string{"Component", "Size", "Offset", "Register"}, rows)
	}
}

func (r *reporter) printRdt(id *cpuid.CPUID) {
	if m, ok := id.RdtMonitoringInfo(); ok {
		r.section("Resource director monitoring")
		rows := [][]string{{"max rmid", fmt.Sprintf("%d", m.RmidRange())}}
		if l3, ok := m.L3Monitoring(); ok {
			rows = append(rows,
				[]string{"l3 conversion factor", fmt.Sprintf("%d", l3.ConversionFactor())},
				[]string{"l3 occupancy monitoring", fmt.Sprintf("%t", l3.HasOccupancyMonitoring())},
				[]string{"l3 total bandwidth", fmt.Sprintf("%t", l3.HasTotalBandwidthMonitoring())},
				[]string{"l3 local bandwidth", fmt.Sprintf("%t", l3.HasLocalBandwidthMonitoring())},
			)
		}
		r.table(nil, rows)
	}
	if a, ok := id.RdtAllocationInfo(); ok {
		var rows [][]string
		if l3, ok := a.L3Cat(); ok {
			rows = append(rows, []string{
				"L3", fmt.Sprintf("%d", l3.CapacityMaskLength()),
				fmt.Sprintf("%#x", l3.IsolationBitmap()),
				fmt.Sprintf("%d", l3.HighestCos()),
			})
		}
		if l2, ok := a.L2Cat(); ok {
			rows = append(rows, []string{
				"L2", fmt.Sprintf("%d", l2.CapacityMaskLength()),
				fmt.Sprintf("%#x", l2.IsolationBitmap()),
				fmt.Sprintf("%d", l2.HighestCos()),
			})
		}
		if mba, ok := a.MemoryBandwidthAllocation(); ok {
			rows = append(rows, []string{
				"MBA", fmt.Sprintf("%d", mba.MaxHbaThrottling()), "-",
				fmt.Sprintf("%d", mba.HighestCos()),
			})
		}
		if len(rows) > 0 {
			r.section("Resource director allocation")
			r.table([]string{"Resource", "Mask length", "Isolation bitmap", "Highest COS"}, rows)
		}
	}
}

func (r *reporter) printSgx(id *cpuid.CPUID) {
	s, ok := id.SgxInfo()
	if !ok {
		return
	}
	r.section("Software guard extensions")
	r.table(nil, [][]string{
		{"sgx1", fmt.Sprintf("%t", s.HasSgx1())},
		{"sgx2", fmt.Sprintf("%t", s.HasSgx2())},
		{"max enclave size (64-bit)", fmt.Sprintf("2^%d", s.MaxEnclaveSize64())},
	})
	var rows [][]string
	sections := s.Sections()
	for {
		sec, ok := sections.Next()
		if !ok {
			break
		}
		rows = append(rows, []string{
			fmt.Sprintf("%#x", sec.Base()),
			formatSize(sec.Size()),
		})
	}
	if len(rows) > 0 {
		r.table([]string{"EPC base", "Size"}, rows)
	}
}

func (r *reporter) printClock(id *cpuid.CPUID) {
	if t, ok := id.TscInfo(); ok {
		r.section("Time stamp counter")
		rows := [][]string{
			{"tsc/core crystal ratio", fmt.Sprintf("%d/%d", t.Numerator(), t.Denominator())},
			{"core crystal frequency", fmt.Sprintf("%d Hz", t.NominalFrequency())},
		}
		if f := t.TscFrequency(); f != 0 {
			rows = append(rows, []string{"tsc frequency", fmt.Sprintf("%d Hz", f)})
		}
		r.table(nil, rows)
	}
	if f, ok := id.ProcessorFrequencyInfo(); ok {
		r.section("Processor frequency")
		r.table(nil, [][]string{
			{"base", fmt.Sprintf("%d MHz", f.BaseFrequency())},
			{"max", fmt.Sprintf("%d MHz", f.MaxFrequency())},
			{"bus", fmt.Sprintf("%d MHz", f.BusFrequency())},
		})
	}
}

func (r *reporter) printAddressTranslation(id *cpuid.CPUID) {
	iter, ok := id.DeterministicAddressTranslation()
	if !ok {
		return
	}
	var rows [][]string
	for {
		d, ok := iter.Next()
		if !ok {
			break
		}
		var pages []string
		if d.Has4KEntries() {
			pages = append(pages, "4K")
		}
		if d.Has2MBEntries() {
			pages = append(pages, "2M")
		}
		if d.Has4MBEntries() {
			pages = append(pages, "4M")
		}
		if d.Has1GBEntries() {
			pages = append(pages, "1G")
		}
		rows = append(rows, []string{
			fmt.Sprintf("L%d", d.Level()),
			d.Type().String(),
			strings.Join(pages, ","),
			assocString(int(d.Ways()), d.FullyAssociative()),
			fmt.Sprintf("%d", d.Sets()),
		})
	}
	if len(rows) == 0 {
		return
	}
	r.section("Address translation")
	r.table([]string{"Level", "Type", "Pages", "Assoc", "Sets"}, rows)
}

func (r *reporter) printAmdCaches(id *cpuid.CPUID) {
	if l1, ok := id.L1CacheTlbInfo(); ok {
		r.section("L1 cache and TLB")
		r.table([]string{"Unit", "Size", "Assoc", "Line/Entries"}, [][]string{
			{"data cache", fmt.Sprintf("%d KiB", l1.DCacheSize()), assocString(int(l1.DCacheAssociativity()), l1.DCacheAssociativity() == 0xFF), fmt.Sprintf("%d B", l1.DCacheLineSize())},
			{"instruction cache", fmt.Sprintf("%d KiB", l1.ICacheSize()), assocString(int(l1.ICacheAssociativity()), l1.ICacheAssociativity() == 0xFF), fmt.Sprintf("%d B", l1.ICacheLineSize())},
			{"dtlb 4K", "-", assocString(int(l1.DTlb4KAssociativity()), l1.DTlb4KAssociativity() == 0xFF), fmt.Sprintf("%d entries", l1.DTlb4KEntries())},
			{"itlb 4K", "-", assocString(int(l1.ITlb4KAssociativity()), l1.ITlb4KAssociativity() == 0xFF), fmt.Sprintf("%d entries", l1.ITlb4KEntries())},
			{"dtlb 2M/4M", "-", assocString(int(l1.DTlb2M4MAssociativity()), l1.DTlb2M4MAssociativity() == 0xFF), fmt.Sprintf("%d entries", l1.DTlb2M4MEntries())},
			{"itlb 2M/4M", "-", assocString(int(l1.ITlb2M4MAssociativity()), l1.ITlb2M4MAssociativity() == 0xFF), fmt.Sprintf("%d entries", l1.ITlb2M4MEntries())},
		})
	}
	if l2, ok := id.L2L3CacheTlbInfo(); ok {
		r.section("L2/L3 cache and TLB")
		rows := [][]string{
			{"l2 cache", fmt.Sprintf("%d KiB", l2.L2CacheSize()), assocString(l2.L2CacheAssociativity(), l2.L2CacheAssociativity() == 0xFF), fmt.Sprintf("%d B", l2.L2CacheLineSize())},
		}
		if id.Vendor() == cpuid.VendorAMD {
			rows = append(rows,
				[]string{"l3 cache", fmt.Sprintf("%d KiB", l2.L3CacheSize()), assocString(l2.L3CacheAssociativity(), l2.L3CacheAssociativity() == 0xFF), fmt.Sprintf("%d B", l2.L3CacheLineSize())},
				[]string{"l2 dtlb 4K", "-", assocString(l2.L2DTlb4KAssociativity(), l2.L2DTlb4KAssociativity() == 0xFF), fmt.Sprintf("%d entries", l2.L2DTlb4KEntries())},
				[]string{"l2 itlb 4K", "-", assocString(l2.L2ITlb4KAssociativity(), l2.L2ITlb4KAssociativity() == 0xFF), fmt.Sprintf("%d entries", l2.L2ITlb4KEntries())},
				[]string{"l2 dtlb 2M/4M", "-", assocString(l2.L2DTlb2M4MAssociativity(), l2.L2DTlb2M4MAssociativity() == 0xFF), fmt.Sprintf("%d entries", l2.L2DTlb2M4MEntries())},
				[]string{"l2 itlb 2M/4M", "-", assocString(l2.L2ITlb2M4MAssociativity(), l2.L2ITlb2M4MAssociativity() == 0xFF), fmt.Sprintf("%d entries", l2.L2ITlb2M4MEntries())},
			)
		}
		r.table([]string{"Unit", "Size", "Assoc", "Line/Entries"}, rows)
	}
	if t, ok := id.Tlb1GbPageInfo(); ok {
		r.section("1GB page TLB")
		r.table([]string{"Unit", "Assoc", "Entries"}, [][]string{
			{"l1 dtlb", assocString(t.L1DTlbAssociativity(), t.L1DTlbAssociativity() == 0xFF), fmt.Sprintf("%d", t.L1DTlbEntries())},
			{"l1 itlb", assocString(t.L1ITlbAssociativity(), t.L1ITlbAssociativity() == 0xFF), fmt.Sprintf("%d", t.L1ITlbEntries())},
			{"l2 dtlb", assocString(t.L2DTlbAssociativity(), t.L2DTlbAssociativity() == 0xFF), fmt.Sprintf("%d", t.L2DTlbEntries())},
			{"l2 itlb", assocString(t.L2ITlbAssociativity(), t.L2ITlbAssociativity() == 0xFF), fmt.Sprintf("%d", t.L2ITlbEntries())},
		})
	}
}

func (r *reporter) printApm(id *cpuid.CPUID) {
	a, ok := id.ApmInfo()
	if !ok {
		return
	}
	r.section("Advanced power management")
	r.table(nil, [][]string{
		{"invariant tsc", fmt.Sprintf("%t", a.HasInvariantTsc())},
		{"core performance boost", fmt.Sprintf("%t", a.HasCpb())},
		{"hardware p-states", fmt.Sprintf("%t", a.HasHwPstate())},
		{"temperature sensor", fmt.Sprintf("%t", a.HasTsMsr())},
		{"mca overflow recovery", fmt.Sprintf("%t", a.HasMcaOverflowRecovery())},
		{"succor", fmt.Sprintf("%t", a.HasSuccor())},
	})
}

func (r *reporter) printCapacity(id *cpuid.CPUID) {
	p, ok := id.ProcessorCapacityInfo()
	if !ok {
		return
	}
	r.section("Address sizes and capacity")
	rows := [][]string{
		{"physical address bits", fmt.Sprintf("%d", p.PhysicalAddressBits())},
		{"linear address bits", fmt.Sprintf("%d", p.LinearAddressBits())},
	}
	if id.Vendor() == cpuid.VendorAMD {
		rows = append(rows,
			[]string{"physical threads", fmt.Sprintf("%d", p.NumPhysicalThreads())},
			[]string{"apic id size", fmt.Sprintf("%d bits", p.ApicIDSize())},
			[]string{"performance tsc size", fmt.Sprintf("%d bits", p.PerfTscSize())},
		)
	}
	r.table(nil, rows)
}

func (r *reporter) printSvm(id *cpuid.CPUID) {
	s, ok := id.SvmInfo()
	if !ok {
		return
	}
	r.section("Secure virtual machine")
	r.table(nil, [][]string{
		{"revision", fmt.Sprintf("%d", s.Revision())},
		{"asids", fmt.Sprintf("%d", s.SupportedAsids())},
		{"nested paging", fmt.Sprintf("%t", s.HasNestedPaging())},
		{"nrip save", fmt.Sprintf("%t", s.HasNrips())},
		{"avic", fmt.Sprintf("%t", s.HasAvic())},
		{"vgif", fmt.Sprintf("%t", s.HasVgif())},
	})
}

func (r *reporter) printMemoryEncryption(id *cpuid.CPUID) {
	m, ok := id.MemoryEncryptionInfo()
	if !ok {
		return
	}
	r.section("Memory encryption")
	r.table(nil, [][]string{
		{"sme", fmt.Sprintf("%t", m.HasSme())},
		{"sev", fmt.Sprintf("%t", m.HasSev())},
		{"sev-es", fmt.Sprintf("%t", m.HasSevEs())},
		{"sev-snp", fmt.Sprintf("%t", m.HasSevSnp())},
		{"c-bit position", fmt.Sprintf("%d", m.CBitPosition())},
		{"physical address reduction", fmt.Sprintf("%d bits", m.PhysicalAddressReduction())},
		{"max encrypted guests", fmt.Sprintf("%d", m.MaxEncryptedGuests())},
	})
}

func formatSize(bytes uint64) string {
	switch {
	case bytes >= 1<<20 && bytes%(1<<20) == 0:
		return fmt.Sprintf("%d MiB", bytes>>20)
	case bytes >= 1<<10:
		return fmt.Sprintf("%d KiB", bytes>>10)
	}
	return fmt.Sprintf("%d B", bytes)
}

func assocString(ways int, full bool) string {
	switch {
	case full || ways == 0xFF:
		return "full"
	case ways == 0:
		return "off"
	}
	return fmt.Sprintf("%d-way", ways)
}
