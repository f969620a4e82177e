package cmds

import "github.com/go-cpuid/cpuid/pkg/cpuid"

// featureList collects the names of every supported feature flag, in
// the lower-case spelling /proc/cpuinfo uses where one exists.
func featureList(id *cpuid.CPUID) []string {
	var out []string
	add := func(name string, has bool) {
		if has {
			out = append(out, name)
		}
	}

	if f, ok := id.FeatureInfo(); ok {
		add("fpu", f.HasFPU())
		add("vme", f.HasVME())
		add("de", f.HasDE())
		add("pse", f.HasPSE())
		add("tsc", f.HasTSC())
		add("msr", f.HasMSR())
		add("pae", f.HasPAE())
		add("mce", f.HasMCE())
		add("cx8", f.HasCMPXCHG8B())
		add("apic", f.HasAPIC())
		add("sep", f.HasSysenterSysexit())
		add("mtrr", f.HasMTRR())
		add("pge", f.HasPGE())
		add("mca", f.HasMCA())
		add("cmov", f.HasCMOV())
		add("pat", f.HasPAT())
		add("pse36", f.HasPSE36())
		add("psn", f.HasPSN())
		add("clflush", f.HasCLFLUSH())
		add("ds", f.HasDS())
		add("acpi", f.HasACPI())
		add("mmx", f.HasMMX())
		add("fxsr", f.HasFXSaveFXStor())
		add("sse", f.HasSSE())
		add("sse2", f.HasSSE2())
		add("ss", f.HasSS())
		add("ht", f.HasHTT())
		add("tm", f.HasTM())
		add("pbe", f.HasPBE())

		add("sse3", f.HasSSE3())
		add("pclmulqdq", f.HasPCLMULQDQ())
		add("dtes64", f.HasDSArea())
		add("monitor", f.HasMonitorMwait())
		add("vmx", f.HasVMX())
		add("smx", f.HasSMX())
		add("est", f.HasEIST())
		add("tm2", f.HasTM2())
		add("ssse3", f.HasSSSE3())
		add("fma", f.HasFMA())
		add("cx16", f.HasCMPXCHG16B())
		add("pdcm", f.HasPDCM())
		add("pcid", f.HasPCID())
		add("dca", f.HasDCA())
		add("sse4_1", f.HasSSE41())
		add("sse4_2", f.HasSSE42())
		add("x2apic", f.HasX2APIC())
		add("movbe", f.HasMOVBE())
		add("popcnt", f.HasPOPCNT())
		add("tsc_deadline", f.HasTSCDeadline())
		add("aes", f.HasAESNI())
		add("xsave", f.HasXSAVE())
		add("osxsave", f.HasOSXSAVE())
		add("avx", f.HasAVX())
		add("f16c", f.HasF16C())
		add("rdrand", f.HasRDRAND())
		add("hypervisor", f.HasHypervisor())
	}

	if e, ok := id.ExtendedFeatures(); ok {
		add("fsgsbase", e.HasFSGSBASE())
		add("sgx", e.HasSGX())
		add("bmi1", e.HasBMI1())
		add("hle", e.HasHLE())
		add("avx2", e.HasAVX2())
		add("smep", e.HasSMEP())
		add("bmi2", e.HasBMI2())
		add("erms", e.HasRepMovsbStosb())
		add("invpcid", e.HasINVPCID())
		add("rtm", e.HasRTM())
		add("mpx", e.HasMPX())
		add("avx512f", e.HasAVX512F())
		add("avx512dq", e.HasAVX512DQ())
		add("rdseed", e.HasRDSEED())
		add("adx", e.HasADX())
		add("smap", e.HasSMAP())
		add("clflushopt", e.HasCLFLUSHOPT())
		add("clwb", e.HasCLWB())
		add("intel_pt", e.HasProcessorTrace())
		add("sha_ni", e.HasSHA())
		add("avx512bw", e.HasAVX512BW())
		add("avx512vl", e.HasAVX512VL())
		add("avx512vbmi", e.HasAVX512VBMI())
		add("umip", e.HasUMIP())
		add("pku", e.HasPKU())
		add("waitpkg", e.HasWAITPKG())
		add("gfni", e.HasGFNI())
		add("vaes", e.HasVAES())
		add("vpclmulqdq", e.HasVPCLMULQDQ())
		add("avx512vnni", e.HasAVX512VNNI())
		add("la57", e.HasLA57())
		add("rdpid", e.HasRDPID())
		add("fsrm", e.HasFSRM())
		add("md_clear", e.HasMDClear())
		add("serialize", e.HasSERIALIZE())
		add("hybrid", e.HasHybrid())
		add("amx_bf16", e.HasAMXBF16())
		add("avx512fp16", e.HasAVX512FP16())
		add("amx_tile", e.HasAMXTile())
		add("amx_int8", e.HasAMXInt8())
		add("ibrs_ibpb", e.HasIBRSIBPB())
		add("stibp", e.HasSTIBP())
		add("ssbd", e.HasSSBD())
	}

	if e, ok := id.ExtendedProcessorInfo(); ok {
		add("lahf_lm", e.HasLahfSahf())
		add("abm", e.HasLzcnt())
		add("3dnowprefetch", e.HasPrefetchW())
		add("syscall", e.HasSyscallSysret())
		add("nx", e.HasExecuteDisable())
		add("pdpe1gb", e.Has1GiBPages())
		add("rdtscp", e.HasRdtscp())
		add("lm", e.Has64BitMode())
		add("svm", e.HasSvm())
		add("sse4a", e.HasSse4a())
		add("misalignsse", e.HasMisalignedSse())
		add("osvw", e.HasOsvw())
		add("ibs", e.HasIbs())
		add("xop", e.HasXop())
		add("skinit", e.HasSkinit())
		add("wdt", e.HasWdt())
		add("lwp", e.HasLwp())
		add("fma4", e.HasFma4())
		add("tbm", e.HasTbm())
		add("topoext", e.HasTopologyExtensions())
		add("mmxext", e.HasMmxExt())
		add("fxsr_opt", e.HasFastFxsave())
		add("3dnowext", e.Has3DNowExt())
		add("3dnow", e.Has3DNow())
	}

	return out
}
